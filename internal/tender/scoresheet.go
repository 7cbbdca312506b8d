package tender

import (
	"github.com/shopspring/decimal"

	"ministry/tender-engine/internal/apperrors"
	"ministry/tender-engine/internal/models"
)

const (
	MinCriterionScore = 0
	MaxCriterionScore = 20

	// Unscored criteria fall back to these values so a bid is never ranked
	// as if the evaluators had given it zero.
	FinancialBaseline = 15
	TechnicalBaseline = 14

	ComplianceEligible   = 95
	ComplianceIneligible = 70
)

var (
	FinancialCriteria = []string{
		"price_competitiveness",
		"cost_breakdown",
		"payment_terms",
		"financial_stability",
		"value_for_money",
	}
	TechnicalCriteria = []string{
		"technical_approach",
		"methodology",
		"relevant_experience",
		"team_qualifications",
		"delivery_timeline",
	}

	financialWeight  = decimal.RequireFromString("0.40")
	technicalWeight  = decimal.RequireFromString("0.35")
	complianceWeight = decimal.RequireFromString("0.25")
	hundred          = decimal.NewFromInt(100)
)

// Criteria returns the named criteria of a category and its baseline score.
func Criteria(category models.ScoreCategory) ([]string, int, bool) {
	switch category {
	case models.CategoryFinancial:
		return FinancialCriteria, FinancialBaseline, true
	case models.CategoryTechnical:
		return TechnicalCriteria, TechnicalBaseline, true
	}
	return nil, 0, false
}

func ClampScore(score int) int {
	if score < MinCriterionScore {
		return MinCriterionScore
	}
	if score > MaxCriterionScore {
		return MaxCriterionScore
	}
	return score
}

func scoresFor(sheet models.ScoreSheet, category models.ScoreCategory) map[string]int {
	if category == models.CategoryFinancial {
		return sheet.Financial
	}
	return sheet.Technical
}

// CategoryScore is round(100 * sum / (20 * criteriaCount)) over the category's
// named criteria, with missing criteria taking the category baseline.
func CategoryScore(sheet models.ScoreSheet, category models.ScoreCategory) int {
	criteria, baseline, ok := Criteria(category)
	if !ok {
		return 0
	}
	scores := scoresFor(sheet, category)

	sum := 0
	for _, name := range criteria {
		score, scored := scores[name]
		if !scored {
			score = baseline
		}
		sum += ClampScore(score)
	}

	ceiling := decimal.NewFromInt(int64(MaxCriterionScore * len(criteria)))
	return int(decimal.NewFromInt(int64(sum)).Mul(hundred).Div(ceiling).Round(0).IntPart())
}

func ComplianceScore(eligible bool) int {
	if eligible {
		return ComplianceEligible
	}
	return ComplianceIneligible
}

// TotalScore blends the category percentages 40/35/25 with compliance, which
// is a fixed function of the bidder's award eligibility.
func TotalScore(sheet models.ScoreSheet, eligible bool) int {
	financial := decimal.NewFromInt(int64(CategoryScore(sheet, models.CategoryFinancial)))
	technical := decimal.NewFromInt(int64(CategoryScore(sheet, models.CategoryTechnical)))
	compliance := decimal.NewFromInt(int64(ComplianceScore(eligible)))

	total := financial.Mul(financialWeight).
		Add(technical.Mul(technicalWeight)).
		Add(compliance.Mul(complianceWeight))
	return int(total.Round(0).IntPart())
}

// Evaluate returns a copy of sheet with the derived scores filled in. The
// input's maps are not shared with the result.
func Evaluate(sheet models.ScoreSheet, eligible bool) models.ScoreSheet {
	out := models.ScoreSheet{
		Financial: copyScores(sheet.Financial),
		Technical: copyScores(sheet.Technical),
	}
	out.FinancialScore = CategoryScore(out, models.CategoryFinancial)
	out.TechnicalScore = CategoryScore(out, models.CategoryTechnical)
	out.ComplianceScore = ComplianceScore(eligible)
	out.TotalScore = TotalScore(out, eligible)
	return out
}

// SetCriterion returns a copy of sheet with one criterion replaced. The score
// is clamped to [0,20]; unknown categories and criteria are rejected.
func SetCriterion(sheet models.ScoreSheet, category models.ScoreCategory, criterion string, score int) (models.ScoreSheet, error) {
	criteria, _, ok := Criteria(category)
	if !ok {
		return sheet, apperrors.Validation("unknown score category %q", category)
	}
	if !contains(criteria, criterion) {
		return sheet, apperrors.Validation("unknown %s criterion %q", category, criterion)
	}

	out := models.ScoreSheet{
		Financial: copyScores(sheet.Financial),
		Technical: copyScores(sheet.Technical),
	}
	if category == models.CategoryFinancial {
		out.Financial[criterion] = ClampScore(score)
	} else {
		out.Technical[criterion] = ClampScore(score)
	}
	return out, nil
}

func copyScores(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
