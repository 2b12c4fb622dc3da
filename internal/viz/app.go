package viz

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/san-kum/healthscatter/internal/chart"
	"github.com/san-kum/healthscatter/internal/dataset"
	"github.com/san-kum/healthscatter/internal/selector"
)

const (
	panelWidth = 36
	tickWidth  = 8
	headerRows = 2
	footerRows = 4

	minPlotCols = 24
	minPlotRows = 8

	frameRate = time.Second / 60
)

// Settings configures an App.
type Settings struct {
	// Load fetches the dataset once when the program starts.
	Load       func() (*dataset.Dataset, error)
	Layout     chart.Layout
	Selection  selector.Selection
	Transition time.Duration
	Theme      string
	Logger     *slog.Logger
}

type datasetMsg struct {
	ds  *dataset.Dataset
	err error
}

// TickMsg advances a running transition.
type TickMsg time.Time

// App is the interactive scatter plot.
type App struct {
	settings Settings
	log      *slog.Logger
	zones    *zone.Manager
	prefix   string

	ctrl  *chart.Controller
	frame chart.Frame

	trans      *chart.Transition
	transStart time.Time

	loading bool
	err     error

	focus    int
	width    int
	height   int
	theme    Theme
	styles   styles
	showHelp bool
}

func NewApp(s Settings) App {
	if s.Load == nil {
		s.Load = func() (*dataset.Dataset, error) { return dataset.Sample(), nil }
	}
	if s.Layout.Width == 0 {
		s.Layout = chart.DefaultLayout()
	}
	log := s.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	theme := GetTheme(s.Theme)
	zones := zone.New()
	return App{
		settings: s,
		log:      log,
		zones:    zones,
		prefix:   zones.NewPrefix(),
		loading:  true,
		focus:    -1,
		width:    110,
		height:   32,
		theme:    theme,
		styles:   newStyles(theme),
	}
}

func (a App) Init() tea.Cmd {
	load := a.settings.Load
	return func() tea.Msg {
		ds, err := load()
		return datasetMsg{ds: ds, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datasetMsg:
		return a.loaded(msg)

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case TickMsg:
		if a.trans == nil {
			return a, nil
		}
		elapsed := time.Time(msg).Sub(a.transStart)
		if a.trans.Done(elapsed) {
			a.frame = a.trans.Target()
			a.trans = nil
			return a, nil
		}
		a.frame = a.trans.At(elapsed)
		return a, tick()

	case tea.KeyMsg:
		return a.key(msg)

	case tea.MouseMsg:
		return a.mouse(msg)
	}
	return a, nil
}

func (a App) loaded(msg datasetMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		a.err = msg.err
		a.log.Warn("dataset unavailable", "err", msg.err)
		return a, nil
	}
	ctrl, err := chart.NewController(msg.ds, a.settings.Layout,
		chart.WithSelection(a.settings.Selection),
		chart.WithLogger(a.log))
	if err != nil {
		a.err = err
		a.log.Warn("dataset unavailable", "err", err)
		return a, nil
	}
	a.ctrl = ctrl
	a.frame = ctrl.Frame()
	a.log.Info("dataset loaded", "records", msg.ds.Len(), "selection", a.frame.Selection.String())
	return a, nil
}

var (
	xKeys = map[string]dataset.Field{"1": dataset.Poverty, "2": dataset.Age, "3": dataset.Income}
	yKeys = map[string]dataset.Field{"4": dataset.Healthcare, "5": dataset.Smokes, "6": dataset.Obesity}
)

func (a App) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch k {
	case "q", "ctrl+c":
		a.zones.Close()
		return a, tea.Quit
	case "?":
		a.showHelp = !a.showHelp
		return a, nil
	case "t":
		a.theme = NextTheme(a.theme.Name)
		a.styles = newStyles(a.theme)
		return a, nil
	}
	if a.ctrl == nil {
		return a, nil
	}
	if f, ok := xKeys[k]; ok {
		return a.click(f.String())
	}
	if f, ok := yKeys[k]; ok {
		return a.click(f.String())
	}
	n := len(a.frame.Points)
	switch k {
	case "tab":
		if n > 0 {
			a.focus = (a.focus + 1) % n
		}
	case "shift+tab":
		if n > 0 {
			if a.focus <= 0 {
				a.focus = n - 1
			} else {
				a.focus--
			}
		}
	case "esc":
		a.focus = -1
	}
	return a, nil
}

func (a App) mouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.ctrl == nil {
		return a, nil
	}
	switch msg.Action {
	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		for _, l := range selector.Labels() {
			if z := a.zones.Get(a.labelZone(l.Field)); z != nil && z.InBounds(msg) {
				return a.click(l.Field.String())
			}
		}
		if i := a.pointAt(msg.X, msg.Y); i >= 0 {
			a.focus = i
		}
	case tea.MouseActionMotion:
		if i := a.pointAt(msg.X, msg.Y); i >= 0 {
			a.focus = i
		}
	}
	return a, nil
}

// click dispatches a label token. A changed selection starts a transition
// from whatever is on screen now.
func (a App) click(token string) (tea.Model, tea.Cmd) {
	plan, next := a.ctrl.Click(token)
	if plan.Empty() {
		return a, nil
	}
	if !plan.Changed || a.settings.Transition <= 0 {
		a.frame = next
		a.trans = nil
		return a, nil
	}
	running := a.trans != nil
	a.trans = chart.NewTransition(a.frame, next, a.settings.Transition)
	a.transStart = time.Now()
	// Ticks and labels switch now; points ease in on later ticks.
	a.frame = a.trans.At(0)
	if running {
		// The tick chain of the previous transition drives this one.
		return a, nil
	}
	return a, tick()
}

// Frame returns the frame currently on screen.
func (a App) Frame() chart.Frame { return a.frame }

// Animating reports whether a transition is running.
func (a App) Animating() bool { return a.trans != nil }

// Err returns the load failure, if any.
func (a App) Err() error { return a.err }

// Focused returns the focused point, if any.
func (a App) Focused() (chart.Point, bool) {
	if a.focus < 0 || a.focus >= len(a.frame.Points) {
		return chart.Point{}, false
	}
	return a.frame.Points[a.focus], true
}

func (a App) labelZone(f dataset.Field) string { return a.prefix + f.String() }

// Run starts the interactive chart and blocks until it exits.
func Run(s Settings) error {
	p := tea.NewProgram(NewApp(s), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
