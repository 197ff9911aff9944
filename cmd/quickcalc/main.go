package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"quickcalc/internal/accumulator"
	"quickcalc/internal/config"
	"quickcalc/internal/controllers"
	"quickcalc/internal/engine"
	"quickcalc/internal/logger"
	"quickcalc/internal/models"
	"quickcalc/internal/shutdown"
	"quickcalc/internal/theme"
	"quickcalc/internal/views"
)

const (
	AppName    = "QuickCalc"
	AppID      = "com.quickcalc.desktop"
	AppVersion = "1.0.0"
)

// Application wires the calculator together: Fyne window, state
// repositories, evaluation engine, controller, view, and shutdown
// handling.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	log     logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	shutdownManager *shutdown.Manager
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)
	application.Run()
}

// NewApplication builds the full object graph.
func NewApplication(cfg *config.Config) *Application {
	appLogger := logger.NewConsoleLogger(cfg.LogLevel)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(360, 480))

	// Preferences: CLI theme override wins, otherwise the persisted
	// choice, otherwise OS mirroring.
	prefs := models.NewPreferences()
	prefs.SetDigitCap(cfg.DigitCap)
	if cfg.Theme != models.ThemeSystem {
		prefs.SetTheme(cfg.Theme)
	} else {
		prefs.SetTheme(theme.Load(fyneApp))
	}
	theme.Apply(fyneApp, prefs.Theme())

	state := models.NewExpressionState()
	memory := models.NewMemoryRegister()
	evalService := engine.NewService(appLogger)
	acc := accumulator.New(state, memory, prefs, evalService, appLogger)

	view := views.NewMainView(window)
	controller := controllers.NewMainController(acc, memory, prefs, fyneApp, appLogger)
	controller.SetMainView(view)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("controller", controller)
	shutdownManager.Listen()

	application := &Application{
		fyneApp:         fyneApp,
		window:          window,
		log:             appLogger,
		controller:      controller,
		view:            view,
		shutdownManager: shutdownManager,
	}

	window.SetOnClosed(func() {
		shutdownManager.Shutdown()
	})

	// A signal arriving while the event loop runs must also close the
	// window.
	go func() {
		<-shutdownManager.Done()
		fyne.Do(func() {
			fyneApp.Quit()
		})
	}()

	appLogger.Info("app", "application initialized", map[string]interface{}{
		"name":    AppName,
		"version": AppVersion,
	})

	return application
}

// Run enters the Fyne event loop and blocks until the window closes.
func (a *Application) Run() {
	a.window.Show()
	a.fyneApp.Run()
	a.log.Info("app", "application terminated", nil)
}
