package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inboundlab/triage/internal/prompts/tasks"
)

// sampleEmail is the built-in demonstration input used when --file is not set.
const sampleEmail = `From: sarah.johnson@company.com
Date: Monday, March 15, 2024
Subject: Q2 Planning - Action Required

Hi Team,

Hope you're all doing well. We need to wrap up our Q2 planning soon.

Could you please:
- Review the attached budget proposal and provide feedback by EOD Wednesday
- Schedule a team meeting for next week to discuss the roadmap
- Send me your individual OKRs for Q2 (this is URGENT - needed by tomorrow!)

Also, when you get a chance, please update the project dashboard with current status.

Thanks,
Sarah
`

var tasksFile string

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Extract actionable tasks from an email",
	Long: `Extract actionable tasks from email text.

The email is sent to the configured LLM provider with a strict output schema;
the response is validated locally (priority must be high, medium, or low)
before anything is printed. Without --file a built-in sample email is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		ex, err := newExtractor(logger)
		if err != nil {
			return err
		}

		email, err := inputText(tasksFile, sampleEmail)
		if err != nil {
			return err
		}

		result, err := tasks.Extract(cmd.Context(), ex, email)
		if err != nil {
			return err
		}

		fmt.Printf("Sender: %s\n", result.Sender)
		fmt.Printf("Date: %s\n", result.Date)
		fmt.Printf("Priority: %s\n", result.Priority)
		if result.Deadline != nil {
			fmt.Printf("Deadline: %s\n", *result.Deadline)
		} else {
			fmt.Println("Deadline: none")
		}
		fmt.Println("\nAction Items:")
		for i, task := range result.ActionItems {
			fmt.Printf("  %d. %s\n", i+1, task)
		}
		fmt.Printf("\nContext: %s\n", result.Context)

		return nil
	},
}

func init() {
	tasksCmd.Flags().StringVarP(&tasksFile, "file", "f", "", "read email text from file instead of the built-in sample")
}
