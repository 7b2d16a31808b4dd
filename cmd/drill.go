package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/shapes/internal/art"
	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/abhisek/shapes/internal/screens/quiz"
	"github.com/abhisek/shapes/internal/session"
	"github.com/abhisek/shapes/internal/shapes"
	"github.com/spf13/cobra"
)

const (
	drillArtCols = 32
	drillArtRows = 14
)

var errEmptyPool = errors.New("no shapes in the selected pool")

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Take the shape quiz in line mode (no TUI)",
	Long: `Answer the shape quiz on stdin/stdout.

Each question shows the shape as text art. Answer with the option number
or the shape's name. Feedback delays are skipped.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().Bool("all", false, "Quiz on every shape instead of the basic pool")
	drillCmd.Flags().Int("count", 0, "Number of questions (overrides quiz.length)")
	drillCmd.Flags().Uint64("seed", 0, "Random seed for a repeatable quiz (0 picks one)")
}

func runDrill(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	all, _ := cmd.Flags().GetBool("all")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	if count < 0 {
		return fmt.Errorf("invalid --count %d: must be positive", count)
	}
	if count > 0 {
		e.cfg.Quiz.Length = count
	}
	useBasic := e.cfg.Quiz.UseBasicPool() && !all

	clock := schedule.NewManual()
	var opts []session.Option
	if seed != 0 {
		opts = append(opts, session.WithRand(random.New(seed)))
	}
	ctrl := e.newController(clock, opts...)

	return drill(cmd.InOrStdin(), cmd.OutOrStdout(), ctrl, clock, useBasic)
}

// drill runs one quiz against ctrl, reading answers line by line from in.
// clock is flushed after every answer so the quiz advances immediately.
func drill(in io.Reader, out io.Writer, ctrl *session.Controller, clock *schedule.Manual, useBasic bool) error {
	ctrl.StartQuiz(useBasic)
	if ctrl.Mode() != session.ModeQuiz {
		return errEmptyPool
	}

	scanner := bufio.NewScanner(in)
	for ctrl.Mode() == session.ModeQuiz {
		st := ctrl.State()
		cur, _ := st.Current()

		fmt.Fprintf(out, "── Question %d/%d ──  %s\n", st.Index+1, len(st.Deck), quiz.Points(st.QuizScore))
		fmt.Fprintln(out, plainArt(cur.Art))
		fmt.Fprintln(out, quiz.Question)
		for i, o := range st.QuizOptions {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Name)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			ctrl.GoHome()
			return scanner.Err()
		}
		name, ok := parseAnswer(scanner.Text(), st.QuizOptions)
		if !ok {
			fmt.Fprintf(out, "Type 1-%d or a shape name.\n\n", len(st.QuizOptions))
			continue
		}

		ctrl.HandleQuizAnswer(name)
		after := ctrl.State()
		if after.AnsweredCorrectly() {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ It's a %s!\033[0m\n", cur.Name)
		}
		fmt.Fprintln(out)
		clock.Flush()
	}

	st := ctrl.State()
	total := len(st.Deck)
	fmt.Fprintf(out, "── Summary: %d/%d correct (%d%%) ──\n", st.QuizScore, total, session.Percent(st.QuizScore, total))
	fmt.Fprintln(out, session.Verdict(st.QuizScore, total))
	if len(st.Missed) > 0 {
		fmt.Fprintf(out, "Keep practicing: %s\n", strings.Join(st.Missed, ", "))
	}
	return nil
}

// parseAnswer maps a typed line to one of the option names. It accepts an
// option number or a name in any case.
func parseAnswer(line string, options []shapes.Shape) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(options) {
			return "", false
		}
		return options[n-1].Name, true
	}
	for _, o := range options {
		if strings.EqualFold(o.Name, line) {
			return o.Name, true
		}
	}
	return "", false
}

// plainArt renders ill as '#' blocks on a blank background.
func plainArt(ill art.Illustration) string {
	if ill.IsZero() {
		return ""
	}
	return strings.ReplaceAll(art.RenderPlain(ill.Figure(), drillArtCols, drillArtRows), ".", " ")
}
