package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "dojo.dev/pkg/dojo/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command

	mu     sync.Mutex
	out    io.Writer
	styles styles
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayWatching announces watch mode.
func (s *SimpleUI) DisplayWatching(ctx context.Context, dir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s %s\n", st.title.Render("Watching"), dir)
		fmt.Fprintf(w, "%s\n", st.muted.Render("Type 'help' for commands."))
	})
}

// DisplayVerifying shows which exercise is being checked.
func (s *SimpleUI) DisplayVerifying(ctx context.Context, exercise m.Exercise, index int, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s %s (%s)\n", st.muted.Render(fmt.Sprintf("[%d/%d]", index+1, total)), exercise.Name, exercise.Mode)
	})
}

// DisplayPassed reports a passing exercise.
func (s *SimpleUI) DisplayPassed(ctx context.Context, exercise m.Exercise) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s %s\n", st.pass.Render(passSymbol), exercise.Name)
	})
}

// DisplayFailed reports a failing exercise with its diagnostics.
func (s *SimpleUI) DisplayFailed(ctx context.Context, exercise m.Exercise, outcome m.Outcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s %s\n", st.fail.Render(failSymbol), exercise.Name)

		if output := strings.TrimRight(outcome.Output, "\n"); output != "" {
			fmt.Fprintf(w, "%s\n", output)
		}
	})
}

// DisplayToolOutput echoes raw toolchain output.
func (s *SimpleUI) DisplayToolOutput(ctx context.Context, exercise m.Exercise, output string) {
	if err := ctx.Err(); err != nil {
		return
	}

	output = strings.TrimRight(output, "\n")
	if output == "" {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s\n%s\n", st.muted.Render("--- output of "+exercise.Name), output)
	})
}

// DisplayHintPrompt tells the learner how to get a hint for the failing exercise.
func (s *SimpleUI) DisplayHintPrompt(ctx context.Context, exercise m.Exercise) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "Fix %s in %s. Type %s for help.\n",
			exercise.Name, exercise.Path, st.command.Render("hint"))
	})
}

// DisplayCompleted celebrates a fully passing registry.
func (s *SimpleUI) DisplayCompleted(ctx context.Context, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s All %d exercises pass.\n", st.pass.Render(passSymbol), total)
	})
}

// DisplayHint prints the hint of an exercise.
func (s *SimpleUI) DisplayHint(ctx context.Context, exercise string, hint string) {
	if err := ctx.Err(); err != nil {
		return
	}

	hint = strings.TrimSpace(hint)
	if hint == "" {
		hint = "No hint for this one."
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s %s\n%s\n", st.title.Render("Hint for"), exercise, st.hint.Render(hint))
	})
}

// DisplayNoActiveFailure answers a hint request while nothing is failing.
func (s *SimpleUI) DisplayNoActiveFailure(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s\n", st.muted.Render("No exercise is failing right now."))
	})
}

// DisplayShellHelp lists the watch mode commands.
func (s *SimpleUI) DisplayShellHelp(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s  show the hint for the failing exercise\n", st.command.Render("hint "))
		fmt.Fprintf(w, "%s  clear the screen\n", st.command.Render("clear"))
		fmt.Fprintf(w, "%s  leave watch mode\n", st.command.Render("quit "))
		fmt.Fprintf(w, "%s  show this help\n", st.command.Render("help "))
	})
}

// DisplayUnknownCommand rejects a shell line.
func (s *SimpleUI) DisplayUnknownCommand(ctx context.Context, line string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "Unknown command %q. Type %s for the list.\n", line, st.command.Render("help"))
	})
}

// DisplayError reports an error that does not end the current command.
func (s *SimpleUI) DisplayError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	s.render(func(w io.Writer, st styles) {
		fmt.Fprintf(w, "%s\n", st.err.Render("error: "+err.Error()))
	})
}

// DisplayExerciseList prints the exercises with their status as a table.
func (s *SimpleUI) DisplayExerciseList(ctx context.Context, exercises []m.ExerciseStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	table := renderExerciseTable(exercises)

	s.render(func(w io.Writer, _ styles) {
		fmt.Fprintf(w, "\n%s", table)
	})

	return nil
}

// Clear is a no-op for plain output.
func (s *SimpleUI) Clear(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// render serializes writers from the engine and shell goroutines.
func (s *SimpleUI) render(fn func(w io.Writer, st styles)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.cmd.OutOrStdout()
	if w != s.out {
		s.out = w
		s.styles = newStyles(w)
	}

	fn(w, s.styles)
}

func renderExerciseTable(exercises []m.ExerciseStatus) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Name", "Mode", "Path", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	for _, row := range exerciseRows(exercises) {
		table.Append(row)
	}

	table.SetFooter([]string{"", "", "", "Done", progress(exercises)})

	table.Render()

	return tableBuffer.String()
}

func exerciseRows(exercises []m.ExerciseStatus) [][]string {
	rows := make([][]string, 0, len(exercises))

	for i, exercise := range exercises {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			exercise.Name,
			string(exercise.Mode),
			string(exercise.Path),
			statusLabel(exercise.Done),
		})
	}

	return rows
}

func progress(exercises []m.ExerciseStatus) string {
	done := 0

	for _, exercise := range exercises {
		if exercise.Done {
			done++
		}
	}

	return fmt.Sprintf("%d/%d", done, len(exercises))
}

func statusLabel(done bool) string {
	if done {
		return "done"
	}

	return "pending"
}
