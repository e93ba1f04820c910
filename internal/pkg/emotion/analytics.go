package emotion

import (
	"fmt"
	"math"
	"sort"
)

// TypeCount 单个情绪类型的出现次数
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Summary 一组情绪记录的聚合结果
type Summary struct {
	TotalRecords  int         `json:"totalRecords"`
	Counts        []TypeCount `json:"counts"` // 按次数降序，次数相同保持首次出现顺序
	MostFrequent  string      `json:"mostFrequent"`
	PositiveRatio int         `json:"positiveRatio"` // 0-100 整数百分比
}

// Aggregate 纯函数聚合：对输入顺序稳定，空输入返回全零结果而非错误。
func Aggregate(emotionTypes []string) Summary {
	if len(emotionTypes) == 0 {
		return Summary{Counts: []TypeCount{}}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	positive := 0

	for _, t := range emotionTypes {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
		if IsPositiveType(t) {
			positive++
		}
	}

	result := make([]TypeCount, 0, len(order))
	for _, t := range order {
		result = append(result, TypeCount{Type: t, Count: counts[t]})
	}
	// 稳定排序：次数相同的按首次出现顺序
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	total := len(emotionTypes)
	ratio := int(math.Round(float64(positive) / float64(total) * 100))

	return Summary{
		TotalRecords:  total,
		Counts:        result,
		MostFrequent:  result[0].Type,
		PositiveRatio: ratio,
	}
}

// TopN 返回出现次数前 n 的取值，稳定排序
func TopN(values []string, n int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// FallbackInsight 外部生成失败时的兜底文案，纯函数且确定性。
func FallbackInsight(s Summary) string {
	if s.TotalRecords == 0 {
		return NoDataInsight()
	}

	var tone string
	switch {
	case s.PositiveRatio >= 70:
		tone = "긍정적인 감정이 가득한 한 주였어요. 이 흐름을 계속 이어가 보세요."
	case s.PositiveRatio >= 50:
		tone = "긍정과 부정이 균형을 이룬 한 주였어요. 나를 돌보는 시간을 가져보세요."
	default:
		tone = "마음이 무거운 한 주였네요. 호수를 걸으며 천천히 쉬어가도 괜찮아요."
	}

	return fmt.Sprintf("이번 주에는 %d번의 감정을 기록했고, 가장 자주 느낀 감정은 '%s'이에요. 긍정 감정 비율은 %d%%입니다. %s",
		s.TotalRecords, Label(s.MostFrequent), s.PositiveRatio, tone)
}

// NoDataInsight 기록이 없는 주의 고정 문구
func NoDataInsight() string {
	return "이번 주에는 아직 감정 기록이 없어요. 잠시 멈춰 오늘의 마음을 남겨보세요."
}
