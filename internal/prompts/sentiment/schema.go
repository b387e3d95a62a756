package sentiment

import "fmt"

// Level grades sentiment on a five-point scale, used both for the overall
// assessment and for individual indicator phrases.
type Level string

const (
	LevelVeryPositive Level = "very_positive"
	LevelPositive     Level = "positive"
	LevelNeutral      Level = "neutral"
	LevelNegative     Level = "negative"
	LevelVeryNegative Level = "very_negative"
)

// Valid reports whether the level is a member of the closed set.
func (l Level) Valid() bool {
	switch l {
	case LevelVeryPositive, LevelPositive, LevelNeutral, LevelNegative, LevelVeryNegative:
		return true
	}
	return false
}

// Category classifies which area of the business an indicator concerns.
type Category string

const (
	CategoryProduct  Category = "product"
	CategoryService  Category = "service"
	CategoryPrice    Category = "price"
	CategorySupport  Category = "support"
	CategoryDelivery Category = "delivery"
	CategoryOverall  Category = "overall"
)

// Valid reports whether the category is a member of the closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryProduct, CategoryService, CategoryPrice, CategorySupport, CategoryDelivery, CategoryOverall:
		return true
	}
	return false
}

// Emotion is the primary emotional state expressed, separate from business
// risk: an angry customer may still have valid points.
type Emotion string

const (
	EmotionDelighted  Emotion = "delighted"
	EmotionSatisfied  Emotion = "satisfied"
	EmotionNeutral    Emotion = "neutral"
	EmotionFrustrated Emotion = "frustrated"
	EmotionAngry      Emotion = "angry"
)

// Valid reports whether the emotion is a member of the closed set.
func (e Emotion) Valid() bool {
	switch e {
	case EmotionDelighted, EmotionSatisfied, EmotionNeutral, EmotionFrustrated, EmotionAngry:
		return true
	}
	return false
}

// ChurnRisk is the retention risk, distinct from sentiment: disappointed
// does not always mean leaving.
type ChurnRisk string

const (
	ChurnLow    ChurnRisk = "low"
	ChurnMedium ChurnRisk = "medium"
	ChurnHigh   ChurnRisk = "high"
)

// Valid reports whether the churn risk is a member of the closed set.
func (c ChurnRisk) Valid() bool {
	switch c {
	case ChurnLow, ChurnMedium, ChurnHigh:
		return true
	}
	return false
}

// FollowupPriority guides resource allocation for follow-up.
type FollowupPriority string

const (
	FollowupUrgent FollowupPriority = "urgent"
	FollowupHigh   FollowupPriority = "high"
	FollowupMedium FollowupPriority = "medium"
	FollowupLow    FollowupPriority = "low"
)

// Valid reports whether the priority is a member of the closed set.
func (p FollowupPriority) Valid() bool {
	switch p {
	case FollowupUrgent, FollowupHigh, FollowupMedium, FollowupLow:
		return true
	}
	return false
}

// ResponseTemplate selects the customer-service response template.
type ResponseTemplate string

const (
	TemplateApology       ResponseTemplate = "apology"
	TemplateThankYou      ResponseTemplate = "thank_you"
	TemplateClarification ResponseTemplate = "clarification"
	TemplateResolution    ResponseTemplate = "resolution"
)

// Valid reports whether the template type is a member of the closed set.
func (t ResponseTemplate) Valid() bool {
	switch t {
	case TemplateApology, TemplateThankYou, TemplateClarification, TemplateResolution:
		return true
	}
	return false
}

var levelEnum = []string{"very_positive", "positive", "neutral", "negative", "very_negative"}

// ExtractionSchema is the JSON schema for customer sentiment analysis output.
var ExtractionSchema = map[string]any{
	"type": "json_schema",
	"json_schema": map[string]any{
		"name":   "customer_sentiment_analysis",
		"strict": true,
		"schema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"overall_sentiment": map[string]any{
					"type":        "string",
					"enum":        levelEnum,
					"description": "Overall customer sentiment",
				},
				"sentiment_score": map[string]any{
					"type":        "number",
					"minimum":     -1.0,
					"maximum":     1.0,
					"description": "Numerical sentiment score from -1.0 to 1.0",
				},
				"key_sentiment_indicators": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"phrase": map[string]any{
								"type":        "string",
								"description": "Exact phrase from the feedback",
							},
							"sentiment_impact": map[string]any{
								"type": "string",
								"enum": levelEnum,
							},
							"category": map[string]any{
								"type": "string",
								"enum": []string{"product", "service", "price", "support", "delivery", "overall"},
							},
						},
						"required":             []string{"phrase", "sentiment_impact", "category"},
						"additionalProperties": false,
					},
					"description": "Specific phrases and their sentiment impact",
				},
				"positive_aspects": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "What the customer liked",
				},
				"negative_aspects": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "What the customer disliked",
				},
				"improvement_suggestions": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Customer's suggestions for improvement",
				},
				"emotion_detected": map[string]any{
					"type":        "string",
					"enum":        []string{"delighted", "satisfied", "neutral", "frustrated", "angry"},
					"description": "Primary emotion expressed",
				},
				"churn_risk": map[string]any{
					"type":        "string",
					"enum":        []string{"low", "medium", "high"},
					"description": "Risk of losing this customer",
				},
				"requires_followup": map[string]any{
					"type":        "boolean",
					"description": "Whether this feedback needs immediate attention",
				},
				"followup_priority": map[string]any{
					"type":        "string",
					"enum":        []string{"urgent", "high", "medium", "low"},
					"description": "Priority level for follow-up",
				},
				"recommended_actions": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Specific actions to address this feedback",
				},
				"response_template_type": map[string]any{
					"type":        "string",
					"enum":        []string{"apology", "thank_you", "clarification", "resolution"},
					"description": "Type of response template to use",
				},
				"executive_summary_spanish": map[string]any{
					"type":        "string",
					"description": "Proporcione un resumen ejecutivo en español del feedback del cliente, incluyendo el sentimiento principal, riesgo de pérdida del cliente, y acciones recomendadas. Máximo 3 oraciones.",
				},
			},
			"required": []string{
				"overall_sentiment",
				"sentiment_score",
				"key_sentiment_indicators",
				"positive_aspects",
				"negative_aspects",
				"improvement_suggestions",
				"emotion_detected",
				"churn_risk",
				"requires_followup",
				"followup_priority",
				"recommended_actions",
				"response_template_type",
				"executive_summary_spanish",
			},
			"additionalProperties": false,
		},
	},
}

// Indicator is a specific phrase with its sentiment impact and the business
// area it concerns.
type Indicator struct {
	Phrase          string   `json:"phrase"`
	SentimentImpact Level    `json:"sentiment_impact"`
	Category        Category `json:"category"`
}

// Result is a sentiment analysis record extracted from customer feedback.
// Records are immutable value objects built fresh per extraction call.
type Result struct {
	OverallSentiment        Level            `json:"overall_sentiment"`
	SentimentScore          float64          `json:"sentiment_score"`
	KeySentimentIndicators  []Indicator      `json:"key_sentiment_indicators"`
	PositiveAspects         []string         `json:"positive_aspects"`
	NegativeAspects         []string         `json:"negative_aspects"`
	ImprovementSuggestions  []string         `json:"improvement_suggestions"`
	EmotionDetected         Emotion          `json:"emotion_detected"`
	ChurnRisk               ChurnRisk        `json:"churn_risk"`
	RequiresFollowup        bool             `json:"requires_followup"`
	FollowupPriority        FollowupPriority `json:"followup_priority"`
	RecommendedActions      []string         `json:"recommended_actions"`
	ResponseTemplateType    ResponseTemplate `json:"response_template_type"`
	ExecutiveSummarySpanish string           `json:"executive_summary_spanish"`
}

// Validate enforces enum membership and the score bound on a parsed record.
// The [-1.0, 1.0] score interval is a hard contract.
func (r *Result) Validate() error {
	if !r.OverallSentiment.Valid() {
		return fmt.Errorf("overall_sentiment %q is not a valid sentiment level", r.OverallSentiment)
	}
	if r.SentimentScore < -1.0 || r.SentimentScore > 1.0 {
		return fmt.Errorf("sentiment_score %.2f is outside [-1.0, 1.0]", r.SentimentScore)
	}
	for i, ind := range r.KeySentimentIndicators {
		if !ind.SentimentImpact.Valid() {
			return fmt.Errorf("indicator %d: sentiment_impact %q is not a valid sentiment level", i, ind.SentimentImpact)
		}
		if !ind.Category.Valid() {
			return fmt.Errorf("indicator %d: category %q is not a valid category", i, ind.Category)
		}
	}
	if !r.EmotionDetected.Valid() {
		return fmt.Errorf("emotion_detected %q is not a valid emotion", r.EmotionDetected)
	}
	if !r.ChurnRisk.Valid() {
		return fmt.Errorf("churn_risk %q is not one of low, medium, high", r.ChurnRisk)
	}
	if !r.FollowupPriority.Valid() {
		return fmt.Errorf("followup_priority %q is not a valid priority", r.FollowupPriority)
	}
	if !r.ResponseTemplateType.Valid() {
		return fmt.Errorf("response_template_type %q is not a valid template type", r.ResponseTemplateType)
	}
	return nil
}
