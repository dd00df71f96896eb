package consts

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

const (
	// CategoryDefault 分类缺省值，分类失败或未命中白名单时使用
	CategoryDefault = "日常交流"
	CategoryOther   = "其他"
)

const (
	// TemplateDraftLimit 单次草稿最多参考的模板条数
	TemplateDraftLimit = 3

	// DefaultCommentListLimit 评论列表默认条数
	DefaultCommentListLimit = 50

	// DefaultAnalyticsDays 分析数据默认天数
	DefaultAnalyticsDays = 7
)
