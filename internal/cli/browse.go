package cli

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/digraph6"
	"github.com/matzehuels/funkdigen/pkg/errors"
	"github.com/matzehuels/funkdigen/pkg/generate"
	"github.com/matzehuels/funkdigen/pkg/graph"
)

// browseCommand creates the browse command for stepping through the
// generated digraphs one at a time.
func (c *CLI) browseCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "browse [flags] SIZE",
		Short: "Step through the digraphs of a size interactively",
		Long: `Browse generates the digraphs of the given size lazily and shows them one at
a time with their code, digraph6 line and arcs.

Keys: space, enter, → or n for the next digraph; q, esc or ctrl+c to quit.`,
		Args: sizeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := strconv.Atoi(args[0])
			return c.runBrowse(cmd, n, flags)
		},
	}
	flags.registerSelection(cmd.Flags())
	return cmd
}

func (c *CLI) runBrowse(cmd *cobra.Command, n int, f generateFlags) error {
	ctx := cmd.Context()
	opts, loopless, err := c.options(cmd, f)
	if err != nil {
		return err
	}
	seq, err := generate.Digraphs(ctx, n, opts)
	if err != nil {
		return err
	}

	m := newBrowseModel(n, seq, loopless)
	defer m.stop()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(c.stdout),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "browser")
	}
	if bm, ok := final.(browseModel); ok && bm.index > 0 {
		printSummary(c.stderr, uint64(bm.index), bm.elapsed())
	}
	return nil
}

// =============================================================================
// browseModel - one digraph at a time
// =============================================================================

var (
	browseHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseCodeStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	browseBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
	browseHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// browseModel is the bubbletea model for the browse command. It pulls one
// code per step from the generator.
type browseModel struct {
	size     int
	loopless bool

	next  func() (code.Code, bool)
	stop  func()
	start time.Time

	current code.Code
	index   int
	done    bool
}

func newBrowseModel(size int, seq iter.Seq[code.Code], loopless bool) browseModel {
	next, stop := iter.Pull(seq)
	m := browseModel{size: size, loopless: loopless, next: next, stop: stop, start: time.Now()}
	return m.advance()
}

// advance pulls the next code, marking the model done when the sequence is
// exhausted.
func (m browseModel) advance() browseModel {
	if m.done {
		return m
	}
	c, ok := m.next()
	if !ok {
		m.done = true
		return m
	}
	m.current = c
	m.index++
	return m
}

func (m browseModel) elapsed() time.Duration { return time.Since(m.start) }

func (m browseModel) Init() tea.Cmd {
	if m.current == nil {
		return tea.Quit
	}
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ", "enter", "right", "n":
		m = m.advance()
		if m.done {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(browseHeaderStyle.Render(fmt.Sprintf("%s %d", appName, m.size)))
	b.WriteString("\n\n")

	if m.current == nil {
		b.WriteString(StyleDim.Render("no digraphs of this size"))
		b.WriteString("\n")
		return b.String()
	}

	g := graph.Render(m.current)
	arcs := make([]string, 0, g.Size())
	for u, v := range g.Arcs() {
		arcs = append(arcs, fmt.Sprintf("%d→%d", u, v))
	}
	body := strings.Join([]string{
		StyleDim.Render("#") + "        " + StyleNumber.Render(strconv.Itoa(m.index)),
		StyleDim.Render("code") + "     " + browseCodeStyle.Render(m.current.String()),
		StyleDim.Render("digraph6") + " " + browseCodeStyle.Render(digraph6.Encode(g, m.loopless)),
		StyleDim.Render("arcs") + "     " + browseCodeStyle.Render(strings.Join(arcs, " ")),
	}, "\n")
	b.WriteString(browseBoxStyle.Render(body))
	b.WriteString("\n")

	help := "space/enter/→/n next • q quit"
	if m.done {
		help = "last digraph • q quit"
	}
	b.WriteString(browseHelpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}
