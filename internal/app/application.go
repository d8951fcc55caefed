package app

import (
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"biorhythm-studio/internal/biorhythm"
	"biorhythm-studio/internal/config"
	"biorhythm-studio/internal/gui"
	"biorhythm-studio/internal/logger"
	"biorhythm-studio/internal/shutdown"
)

const (
	AppName    = "Biorhythm Studio"
	AppID      = "com.ferricforge.biorhythmstudio"
	AppVersion = "1.0.0"
)

// defaultBirthdate seeds the chart and the date dialog before the user
// enters a real birthdate.
var defaultBirthdate = biorhythm.Date{Year: 1990, Month: 1, Day: 1}

// Application wires the Fyne window, the panels, and the logging
// manager together. All domain decisions stay in the core packages;
// this layer only routes values between widgets and models.
type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	log      *logger.Manager
	prefs    config.Preferences
	shutdown *shutdown.Manager

	chart        *gui.Chart
	fileForm     *gui.FileForm
	registration *gui.RegistrationForm

	birthdate biorhythm.Date
}

// NewApplication builds the application from explicit startup
// configuration. Nothing here reads globals; preferences and the
// logging manager are injected.
func NewApplication(prefs config.Preferences, log *logger.Manager) *Application {
	fyneApp := fyneapp.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(prefs.WindowWidth, prefs.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		log:       log,
		prefs:     prefs,
		shutdown:  shutdown.NewManager(log),
		birthdate: defaultBirthdate,
	}

	// Reverse order on shutdown: stop the UI first, flush logs last.
	a.shutdown.Register(func() { log.Close() })
	a.shutdown.Register(func() { fyneApp.Quit() })

	a.chart = gui.NewChart()
	a.fileForm = gui.NewFileForm(window, a.handleConvert, a.handleLoadSheets)
	a.fileForm.SetLevelLabel(prefs.LogLevel)
	a.fileForm.SetStdout(prefs.LogStdout)
	a.registration = gui.NewRegistrationForm(a.handleRegister)

	tabs := container.NewAppTabs(
		container.NewTabItem("Biorhythm", a.chart.Container()),
		container.NewTabItem("File Conversion", a.fileForm.Container()),
		container.NewTabItem("Registration", a.registration.Container()),
	)
	window.SetContent(tabs)

	a.setupMenus()
	a.refreshChart()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  prefs.WindowWidth,
		"window_height": prefs.WindowHeight,
		"log_level":     prefs.LogLevel,
	})
	return a
}

// Run shows the window, prompts for the initial birthdate, and blocks
// until the application exits. Cancelling the initial dialog quits the
// app; later birthdate dialogs just close.
func (a *Application) Run() {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
	})
	a.shutdown.Listen()

	a.window.Show()
	gui.ShowDateDialog(a.window, a.birthdate, a.handleBirthdate, func() {
		a.log.Info("Application", "initial birthdate dialog cancelled, quitting", nil)
		a.shutdown.Shutdown()
	})

	a.fyneApp.Run()
}

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Change Birthdate...", func() {
			gui.ShowDateDialog(a.window, a.birthdate, a.handleBirthdate, nil)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.shutdown.Shutdown()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About "+AppName, func() {
			dialog.ShowInformation("About "+AppName,
				AppName+" v"+AppVersion+"\n\n"+
					"Biorhythm cycle charting and form demos.\n"+
					"Physical 23 days, Emotional 28, Intellectual 33.",
				a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// refreshChart recomputes the chart window from the stored birthdate
// against today's date. The clock stays out of the core: the host
// resolves "today" and hands the engine two plain dates.
func (a *Application) refreshChart() {
	now := time.Now()
	today := biorhythm.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	days := biorhythm.DaysBetween(a.birthdate, today)

	a.chart.SetDaysSinceBirth(days)
	a.log.Debug("Chart", "chart refreshed", map[string]interface{}{
		"birthdate":        a.birthdate.String(),
		"days_since_birth": days,
	})
}
