package emotion

// 情绪记录 (EAMRA) 的固定词表。词表变更需要同步前端选项与历史数据口径，勿随意增删。

// EmotionTypes 9 种情绪
var EmotionTypes = []string{
	"joy",
	"calm",
	"gratitude",
	"excitement",
	"sadness",
	"anxious",
	"anger",
	"loneliness",
	"emptiness",
}

// PositiveTypes 正向情绪子集，用于正向占比计算
var PositiveTypes = map[string]struct{}{
	"joy":        {},
	"calm":       {},
	"gratitude":  {},
	"excitement": {},
}

// HelpfulActions 9 种帮助行为
var HelpfulActions = []string{
	"walking",
	"barefoot_walking",
	"breathing",
	"meditation",
	"music",
	"conversation",
	"rest",
	"exercise",
	"writing",
}

// PositiveChanges 8 种积极变化
var PositiveChanges = []string{
	"happy",
	"relaxed",
	"refreshed",
	"confident",
	"lighter",
	"focused",
	"grateful",
	"energized",
}

// typeLabels 情绪展示名，兜底文案使用
var typeLabels = map[string]string{
	"joy":        "기쁨",
	"calm":       "평온",
	"gratitude":  "감사",
	"excitement": "설렘",
	"sadness":    "슬픔",
	"anxious":    "불안",
	"anger":      "분노",
	"loneliness": "외로움",
	"emptiness":  "공허함",
}

var (
	emotionTypeSet    = toSet(EmotionTypes)
	helpfulActionSet  = toSet(HelpfulActions)
	positiveChangeSet = toSet(PositiveChanges)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsEmotionType 判断是否合法情绪类型
func IsEmotionType(v string) bool {
	_, ok := emotionTypeSet[v]
	return ok
}

// IsHelpfulAction 判断是否合法帮助行为
func IsHelpfulAction(v string) bool {
	_, ok := helpfulActionSet[v]
	return ok
}

// IsPositiveChange 判断是否合法积极变化
func IsPositiveChange(v string) bool {
	_, ok := positiveChangeSet[v]
	return ok
}

// IsPositiveType 判断情绪是否属于正向子集
func IsPositiveType(v string) bool {
	_, ok := PositiveTypes[v]
	return ok
}

// Label 返回情绪展示名，未知类型原样返回
func Label(emotionType string) string {
	if label, ok := typeLabels[emotionType]; ok {
		return label
	}
	return emotionType
}
