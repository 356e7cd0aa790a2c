package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "dojo.dev/pkg/dojo/internal/model"
)

const clearScreen = "\033[H\033[2J"

// Lines around the table: title, blank, header rule, blank, summary, help.
const listReservedLines = 7

// TUI implements UI for terminals. Progress is printed like SimpleUI;
// long exercise lists open a scrollable table.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Clear wipes the terminal.
func (t *TUI) Clear(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.render(func(w io.Writer, _ styles) {
		_, _ = io.WriteString(w, clearScreen)
	})
}

// DisplayExerciseList shows the list in place when it fits the terminal and
// as an interactive table otherwise.
func (t *TUI) DisplayExerciseList(ctx context.Context, exercises []m.ExerciseStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	output := t.cmd.OutOrStdout()
	model := newExerciseListModel(exercises, newStyles(output))

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	if !model.needsPagination() {
		return t.SimpleUI.DisplayExerciseList(ctx, exercises)
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("exercise list: %w", err)
	}

	return nil
}

// exerciseListModel is the Bubble Tea model for browsing the exercise list.
type exerciseListModel struct {
	table     table.Model
	exercises []m.ExerciseStatus
	styles    styles
	height    int
	width     int
	quitting  bool
}

func newExerciseListModel(exercises []m.ExerciseStatus, st styles) exerciseListModel {
	rows := make([]table.Row, 0, len(exercises))
	for _, row := range exerciseRows(exercises) {
		rows = append(rows, table.Row(row))
	}

	t := table.New(
		table.WithColumns(exerciseColumns(exercises)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)),
	)

	return exerciseListModel{
		table:     t,
		exercises: exercises,
		styles:    st,
	}
}

func exerciseColumns(exercises []m.ExerciseStatus) []table.Column {
	nameWidth, pathWidth := len("Name"), len("Path")

	for _, exercise := range exercises {
		nameWidth = max(nameWidth, len(exercise.Name))
		pathWidth = max(pathWidth, len(exercise.Path))
	}

	return []table.Column{
		{Title: "#", Width: max(len(fmt.Sprint(len(exercises))), 1)},
		{Title: "Name", Width: nameWidth},
		{Title: "Mode", Width: len(m.ModeCompile)},
		{Title: "Path", Width: pathWidth},
		{Title: "Status", Width: len("pending")},
	}
}

func (lm exerciseListModel) resize(width, height int) exerciseListModel {
	lm.width = width
	lm.height = height
	lm.table.SetWidth(width)
	lm.table.SetHeight(lm.itemsPerPage())

	return lm
}

// itemsPerPage calculates how many rows fit on screen.
func (lm exerciseListModel) itemsPerPage() int {
	if lm.height == 0 {
		return len(lm.exercises)
	}

	return max(lm.height-listReservedLines, 1)
}

// needsPagination returns true if the list is too large to fit on screen.
func (lm exerciseListModel) needsPagination() bool {
	return lm.height > 0 && len(lm.exercises) > lm.itemsPerPage()
}

func (lm exerciseListModel) Init() tea.Cmd {
	return nil
}

func (lm exerciseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return lm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			lm.quitting = true
			return lm, tea.Quit
		}
	}

	var cmd tea.Cmd
	lm.table, cmd = lm.table.Update(msg)

	return lm, cmd
}

func (lm exerciseListModel) View() string {
	if lm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(lm.styles.title.Render("Exercises"))
	b.WriteString("\n\n")

	if len(lm.exercises) == 0 {
		b.WriteString("  No exercises found\n")
		return b.String()
	}

	b.WriteString(lm.table.View())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Done %s | Row %d of %d\n", progress(lm.exercises), lm.table.Cursor()+1, len(lm.exercises))
	b.WriteString(lm.styles.muted.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
	b.WriteString("\n")

	return b.String()
}
