package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/quiz"
	"github.com/abhisek/sahaay/internal/screens/summary"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the inclusion quiz without the TUI",
	Long: `Answer the sign language and braille quiz on stdin.

Answers are an option number (1-4) or letter (A-D). Nothing is saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := content.Load()
		if err != nil {
			return err
		}
		_, err = runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), cat.Quiz)
		return err
	},
}

// parseAnswer accepts "2" or "b" for the second of n options.
func parseAnswer(s string, n int) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		c := strings.ToUpper(s)[0]
		if c >= 'A' && int(c-'A') < n {
			return int(c - 'A'), true
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}

// runQuiz drives a quiz runner from in. It returns the summary when the quiz
// completes; closing the input abandons it.
func runQuiz(in io.Reader, out io.Writer, questions []quiz.Question) (quiz.Summary, error) {
	r, err := quiz.NewRunner(questions)
	if err != nil {
		return quiz.Summary{}, err
	}
	scanner := bufio.NewScanner(in)

	st := r.Start()
	for st.Phase == quiz.PhaseInProgress {
		q := r.Question()
		fmt.Fprintf(out, "── Question %d/%d ──\n", st.QuestionIndex+1, st.QuestionCount)
		fmt.Fprintln(out, q.Prompt)
		for j, o := range q.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+j, o)
		}

		var choice int
		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				r.Abandon()
				return quiz.Summary{}, scanner.Err()
			}
			var ok bool
			if choice, ok = parseAnswer(scanner.Text(), len(q.Options)); ok {
				break
			}
			fmt.Fprintf(out, "Enter 1-%d or A-%c.\n", len(q.Options), 'A'+len(q.Options)-1)
		}

		if _, err := r.Submit(choice); err != nil {
			return quiz.Summary{}, err
		}
		if r.LastCorrect() {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Wrong. Answer: %s\n", q.Options[q.Correct])
		}
		fmt.Fprintln(out)

		if st, err = r.Advance(); err != nil {
			return quiz.Summary{}, err
		}
	}

	sum, err := r.Summary()
	if err != nil {
		return quiz.Summary{}, err
	}
	fmt.Fprintf(out, "── %s %d/%d (%d%%) ──\n", summary.Headline(sum.Percent), sum.Score, sum.Total, sum.Percent)
	return sum, nil
}
