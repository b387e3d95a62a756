package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inboundlab/triage/internal/prompts"
	"github.com/inboundlab/triage/internal/prompts/sentiment"
	"github.com/inboundlab/triage/internal/prompts/tasks"
)

var promptsShowText bool

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the embedded extraction prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := prompts.NewResolver(newLogger())
		tasks.RegisterPrompts(resolver)
		sentiment.RegisterPrompts(resolver)

		for _, p := range resolver.List() {
			fmt.Printf("%s\n", p.Key)
			fmt.Printf("  description: %s\n", p.Description)
			if len(p.Variables) > 0 {
				fmt.Printf("  variables:   %v\n", p.Variables)
			}
			fmt.Printf("  hash:        %s\n", p.Hash[:12])
			if promptsShowText {
				fmt.Printf("---\n%s---\n", p.Text)
			}
		}
		return nil
	},
}

func init() {
	promptsCmd.Flags().BoolVar(&promptsShowText, "text", false, "print full prompt text")
}
