package viz

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/san-kum/tslab/internal/anim"
	"github.com/san-kum/tslab/internal/config"
	"github.com/san-kum/tslab/internal/kinetics"
	"github.com/san-kum/tslab/internal/plot"
)

// Tab identifies one screen of the App.
type Tab int

const (
	TabEyring Tab = iota
	TabSalt
	TabAnimation
)

var tabNames = [...]string{"Eyring", "Salt Effect", "Animation"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "unknown"
	}
	return tabNames[t]
}

// Slider and selector limits.
const (
	DeltaHMin  = 10.0
	DeltaHMax  = 200.0
	DeltaSMin  = -200.0
	DeltaSMax  = 100.0
	SliderStep = 5.0
	ChargeMin  = -2
	ChargeMax  = 2
)

const (
	defaultCols = 72
	defaultRows = 14
	chrome      = 9 // header, tabs, hints and panel borders
)

// FrameMsg carries one animation tick into Update.
type FrameMsg struct {
	Time   time.Time
	handle *anim.Handle
}

// App is the interactive TUI. Animation frames are drawn inside Update;
// the Loop goroutine only signals that a frame is due.
type App struct {
	tab    Tab
	eyring kinetics.EyringParams
	salt   kinetics.SaltParams
	theme  Theme
	styles Styles
	help   bool

	width, height int
	animHeight    float64

	ctx     context.Context
	canvas  *Canvas
	surface *BrailleSurface
	engine  *anim.Engine
	clock   anim.Clock
	loop    *anim.Loop
	handle  *anim.Handle
	frames  chan time.Time
	logger  *log.Logger
}

// AppOption configures an App.
type AppOption func(*App)

func WithLogger(l *log.Logger) AppOption {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock drives the animation from c instead of the wall clock.
func WithClock(c anim.Clock) AppOption {
	return func(a *App) { a.clock = c }
}

// WithTab selects the initial tab.
func WithTab(t Tab) AppOption {
	return func(a *App) { a.tab = t }
}

// WithContext bounds every animation loop the App starts.
func WithContext(ctx context.Context) AppOption {
	return func(a *App) { a.ctx = ctx }
}

func NewApp(cfg *config.Config, opts ...AppOption) App {
	a := App{
		eyring: kinetics.EyringParams{DeltaH: cfg.Eyring.DeltaH, DeltaS: cfg.Eyring.DeltaS},
		salt:   kinetics.SaltParams{ZA: cfg.Salt.ZA, ZB: cfg.Salt.ZB},
		theme:  GetTheme(cfg.Theme),
		width:  defaultCols + 4,
		height: defaultRows + chrome,
		ctx:    context.Background(),
		clock:  anim.RealClock(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&a)
	}
	a.styles = NewStyles(a.theme)

	a.animHeight = float64(cfg.Animation.Height)
	if a.animHeight <= 0 {
		a.animHeight = config.DefaultHeight
	}
	a.canvas = NewCanvas(defaultCols, defaultRows)
	a.surface = NewBrailleSurface(a.canvas, 1)
	a.surface.FitHeight(a.animHeight)

	mode, err := anim.ParseMode(cfg.Animation.Mode)
	if err != nil {
		a.logger.Warn("falling back to associative mode", "err", err)
		mode = anim.Associative
	}
	style := anim.DefaultStyle()
	if cfg.Animation.Radius > 0 {
		style.Radius = cfg.Animation.Radius
	}
	engineOpts := []anim.Option{
		anim.WithMode(mode),
		anim.WithParticles(cfg.Animation.Particles),
		anim.WithStyle(style),
		anim.WithLogger(a.logger),
	}
	if cfg.Seed != 0 {
		engineOpts = append(engineOpts, anim.WithSeed(cfg.Seed))
	}
	w, h := a.surface.LogicalSize()
	a.engine = anim.New(a.surface, w, h, engineOpts...)
	a.loop = anim.NewLoop(a.clock, anim.IntervalForFPS(cfg.Animation.FPS))
	return a
}

func (a App) Init() tea.Cmd {
	if a.tab == TabAnimation {
		// Init has a value receiver, so the loop starts in Update.
		return func() tea.Msg { return startMsg{} }
	}
	return nil
}

type startMsg struct{}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case startMsg:
		cmd := a.startAnimation()
		return a, cmd
	case FrameMsg:
		if msg.handle != a.handle || a.tab != TabAnimation {
			return a, nil
		}
		a.engine.Frame(msg.Time)
		return a, waitFrame(a.frames, a.handle)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		a.stopAnimation()
		return a, tea.Quit
	case "?":
		a.help = !a.help
		return a, nil
	case "t":
		a.theme = NextTheme(a.theme)
		a.styles = NewStyles(a.theme)
		return a, nil
	case "tab":
		return a.switchTab((a.tab + 1) % Tab(len(tabNames)))
	case "shift+tab":
		return a.switchTab((a.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames)))
	case "1":
		return a.switchTab(TabEyring)
	case "2":
		return a.switchTab(TabSalt)
	case "3":
		return a.switchTab(TabAnimation)
	}

	switch a.tab {
	case TabEyring:
		a.eyringKey(msg)
	case TabSalt:
		a.saltKey(msg)
	case TabAnimation:
		a.animationKey(msg)
	}
	return a, nil
}

func (a *App) eyringKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		a.eyring.DeltaH = clamp(a.eyring.DeltaH-SliderStep, DeltaHMin, DeltaHMax)
	case "right", "l":
		a.eyring.DeltaH = clamp(a.eyring.DeltaH+SliderStep, DeltaHMin, DeltaHMax)
	case "down", "j":
		a.eyring.DeltaS = clamp(a.eyring.DeltaS-SliderStep, DeltaSMin, DeltaSMax)
	case "up", "k":
		a.eyring.DeltaS = clamp(a.eyring.DeltaS+SliderStep, DeltaSMin, DeltaSMax)
	}
}

func (a *App) saltKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "a":
		a.salt.ZA = cycleCharge(a.salt.ZA, 1)
	case "A":
		a.salt.ZA = cycleCharge(a.salt.ZA, -1)
	case "b":
		a.salt.ZB = cycleCharge(a.salt.ZB, 1)
	case "B":
		a.salt.ZB = cycleCharge(a.salt.ZB, -1)
	}
}

func (a *App) animationKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "m", " ":
		a.engine.SetMode(a.engine.Mode().Next())
		a.logger.Debug("mode switched", "mode", a.engine.Mode())
	}
}

func (a App) switchTab(t Tab) (App, tea.Cmd) {
	if t == a.tab {
		return a, nil
	}
	if a.tab == TabAnimation {
		a.stopAnimation()
	}
	a.tab = t
	if t == TabAnimation {
		cmd := a.startAnimation()
		return a, cmd
	}
	return a, nil
}

// startAnimation starts a fresh loop with its own frame channel so that
// a stale waiter from an earlier loop can never steal a frame.
func (a *App) startAnimation() tea.Cmd {
	if a.handle != nil {
		return nil
	}
	frames := make(chan time.Time, 1)
	a.frames = frames
	a.handle = a.loop.Start(a.ctx, func(now time.Time) {
		select {
		case frames <- now:
		default:
		}
	})
	a.logger.Debug("animation started", "mode", a.engine.Mode(), "interval", a.loop.Interval())
	return waitFrame(frames, a.handle)
}

func (a *App) stopAnimation() {
	if a.handle == nil {
		return
	}
	a.handle.Cancel()
	a.logger.Debug("animation stopped", "ticks", a.handle.Ticks(), "frames", a.engine.Frames())
	a.handle = nil
}

func waitFrame(frames <-chan time.Time, h *anim.Handle) tea.Cmd {
	return func() tea.Msg {
		select {
		case now := <-frames:
			return FrameMsg{Time: now, handle: h}
		case <-h.Done():
			return nil
		}
	}
}

func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	cols := width - 4
	rows := height - chrome
	if cols < 10 {
		cols = 10
	}
	if rows < 3 {
		rows = 3
	}
	a.canvas.Resize(cols, rows)
	a.surface.FitHeight(a.animHeight)
	w, h := a.surface.LogicalSize()
	a.engine.Resize(w, h)
}

// Tab returns the visible tab.
func (a App) Tab() Tab { return a.tab }

// Engine exposes the animation engine.
func (a App) Engine() *anim.Engine { return a.engine }

// Handle returns the handle of the running animation loop, or nil.
func (a App) Handle() *anim.Handle { return a.handle }

func (a App) Eyring() kinetics.EyringParams { return a.eyring }

func (a App) Salt() kinetics.SaltParams { return a.salt }

func (a App) Theme() Theme { return a.theme }

func (a App) View() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Transition State Lab"))
	b.WriteString("\n")
	b.WriteString(a.tabsView())
	b.WriteString("\n\n")

	if a.help {
		b.WriteString(a.styles.Panel.Render(a.helpView()))
		return b.String()
	}

	switch a.tab {
	case TabEyring:
		b.WriteString(a.eyringView())
	case TabSalt:
		b.WriteString(a.saltView())
	case TabAnimation:
		b.WriteString(a.animationView())
	}
	b.WriteString("\n")
	b.WriteString(a.styles.KeyHint.Render(a.hints()))
	return b.String()
}

func (a App) tabsView() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == a.tab {
			tabs[i] = a.styles.ActiveTab.Render(label)
		} else {
			tabs[i] = a.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) plotSize() (int, int) {
	w := a.width - 16
	h := a.height - chrome - 6
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

func (a App) eyringView() string {
	p := kinetics.Eyring(a.eyring)
	w, h := a.plotSize()
	sliders := lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Slider("ΔH‡", a.eyring.DeltaH, DeltaHMin, DeltaHMax, "kJ/mol", 24),
		a.styles.Slider("ΔS‡", a.eyring.DeltaS, DeltaSMin, DeltaSMax, "J/(mol·K)", 24),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		sliders,
		a.styles.Separator(w),
		a.styles.Panel.Render(plot.Terminal(plot.EyringFigure(p), w, h)),
	)
}

func (a App) saltView() string {
	p := kinetics.SaltEffect(a.salt)
	w, h := a.plotSize()
	selectors := lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Selector("zA", a.salt.ZA, ChargeMin, ChargeMax),
		a.styles.Selector("zB", a.salt.ZB, ChargeMin, ChargeMax),
		a.styles.Label.Render(fmt.Sprintf("zA·zB = %d (%s)", p.Product, p.Class)),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		selectors,
		a.styles.Separator(w),
		a.styles.Panel.Render(plot.Terminal(plot.SaltEffectFigure(p), w, h)),
	)
}

func (a App) animationView() string {
	mode := a.engine.Mode()
	canvas := lipgloss.NewStyle().
		Foreground(a.theme.ParticleColor(mode)).
		Render(a.canvas.String())
	status := a.styles.Label.Render("mode ") + a.styles.Value.Render(mode.String()) +
		a.styles.Label.Render(fmt.Sprintf("  frames %d", a.engine.Frames()))
	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		a.styles.Panel.Render(canvas),
	)
}

func (a App) hints() string {
	switch a.tab {
	case TabEyring:
		return "←/→ ΔH  ↑/↓ ΔS  tab switch  t theme  ? help  q quit"
	case TabSalt:
		return "a/A zA  b/B zB  tab switch  t theme  ? help  q quit"
	default:
		return "m mode  tab switch  t theme  ? help  q quit"
	}
}

func (a App) helpView() string {
	rows := [][2]string{
		{"tab / 1-3", "switch tab"},
		{"←/→ h/l", "ΔH‡ ±5 kJ/mol"},
		{"↑/↓ k/j", "ΔS‡ ±5 J/(mol·K)"},
		{"a / A", "cycle zA"},
		{"b / B", "cycle zB"},
		{"m / space", "toggle associative/dissociative"},
		{"t", "theme: " + strings.Join(ThemeNames(), ", ")},
		{"?", "close help"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(a.styles.Value.Render(fmt.Sprintf("%-12s", r[0])))
		b.WriteString(a.styles.Label.Render(r[1]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cycleCharge(z, dir int) int {
	n := ChargeMax - ChargeMin + 1
	return ChargeMin + ((z-ChargeMin+dir)%n+n)%n
}
