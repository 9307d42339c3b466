// Package timeline turns the raw match-detail document into one
// canonically ordered, deduplicated timeline of period stops, events and
// the optional penalty shootout, together with the match header info and
// the statistics map.
package timeline

// Source-site vocabulary. The feed is Arabic-language markup; these are
// the literal markers it uses for actions, period boundaries and section
// titles.
const (
	actionYellowCard   = "بطاقة صفراء"
	actionSubstitution = "تبديل لاعب"
	actionGoal         = "هدف"
	actionPenaltyGoal  = "ضربة جزاء"
	actionOwnGoal      = "هدف في مرماه"
	actionRedCard      = "بطاقة حمراء"

	rawKickoff              = "بدأت المباراة"
	rawHalfTime             = "منتصف المباراة"
	rawExtraTimeFirstStart  = "الشوط الإضافي الأول"
	rawExtraTimeSecondStart = "الشوط الإضافي الثاني"
	rawExtraTimeOver        = "نهاية الشوط الإضافي الثاني"
	rawFullTime             = "إنتهت المباراة"

	factsSectionTitle = "معلومات اللقاء"
	possessionLabel   = "الاستحواذ"
	pensScoreLabel    = "ركلات الترجيح"
)

// minuteMark is the apostrophe-like character the source appends to
// clock values ("45’").
const minuteMark = "’"

// secondYellowFill is the icon fill color that distinguishes a
// second-yellow red card from a straight red inside a red-card fragment.
const secondYellowFill = "#ffda46"
