package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inboundlab/triage/internal/prompts/sentiment"
)

// sampleFeedback is the built-in demonstration input used when --file is not set.
const sampleFeedback = `I've been a customer for 3 years, but lately I'm really disappointed.
The product quality is still good, I'll give you that. But your customer service
has become absolutely terrible! I waited 45 minutes on hold yesterday just to
ask a simple question about my billing.

When I finally got through, the agent seemed like they didn't care at all and
couldn't even answer my question properly. They just kept reading from a script.

The price increases don't help either - 20% more than last year for the same service?
That's ridiculous. I'm seriously considering switching to your competitor.

Please do something about your support team. Train them better or hire people who
actually care about customers. Otherwise you'll lose a loyal customer.
`

var sentimentFile string

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Analyze customer feedback for sentiment and actionable insights",
	Long: `Analyze customer feedback text.

The feedback is sent to the configured LLM provider with a strict output
schema covering sentiment, churn risk, follow-up triage, and response
template selection. Every enumerated field and the [-1.0, 1.0] score bound
are validated locally before anything is printed. Without --file a built-in
sample is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		ex, err := newExtractor(logger)
		if err != nil {
			return err
		}

		feedback, err := inputText(sentimentFile, sampleFeedback)
		if err != nil {
			return err
		}

		result, err := sentiment.Extract(cmd.Context(), ex, feedback)
		if err != nil {
			return err
		}

		fmt.Printf("Overall Sentiment: %s (Score: %.2f)\n", result.OverallSentiment, result.SentimentScore)
		fmt.Printf("Emotion Detected: %s\n", result.EmotionDetected)
		fmt.Printf("Churn Risk: %s\n", result.ChurnRisk)
		followup := "No"
		if result.RequiresFollowup {
			followup = "Yes"
		}
		fmt.Printf("Requires Follow-up: %s (Priority: %s)\n", followup, result.FollowupPriority)

		fmt.Println("\nPositive Aspects:")
		for _, aspect := range result.PositiveAspects {
			fmt.Printf("  + %s\n", aspect)
		}

		fmt.Println("\nNegative Aspects:")
		for _, aspect := range result.NegativeAspects {
			fmt.Printf("  - %s\n", aspect)
		}

		fmt.Println("\nKey Indicators:")
		for _, indicator := range result.KeySentimentIndicators {
			fmt.Printf("  * %q -> %s (%s)\n", indicator.Phrase, indicator.SentimentImpact, indicator.Category)
		}

		fmt.Println("\nRecommended Actions:")
		for i, action := range result.RecommendedActions {
			fmt.Printf("  %d. %s\n", i+1, action)
		}

		fmt.Printf("\nResponse Type: %s\n", result.ResponseTemplateType)
		fmt.Println("\nExecutive Summary (Spanish):")
		fmt.Printf("  %s\n", result.ExecutiveSummarySpanish)

		return nil
	},
}

func init() {
	sentimentCmd.Flags().StringVarP(&sentimentFile, "file", "f", "", "read feedback text from file instead of the built-in sample")
}
