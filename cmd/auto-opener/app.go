package main

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/MDastan2005/Auto-opener/internal/config"
	"github.com/MDastan2005/Auto-opener/internal/controllers"
	"github.com/MDastan2005/Auto-opener/internal/launch"
	"github.com/MDastan2005/Auto-opener/internal/logger"
	"github.com/MDastan2005/Auto-opener/internal/models"
	"github.com/MDastan2005/Auto-opener/internal/storage"
	"github.com/MDastan2005/Auto-opener/internal/views"
	"github.com/MDastan2005/Auto-opener/internal/watcher"
)

// Application wires the controller, the two screens and the data root
// watcher together around a single window.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	log     logger.Logger

	controller *controllers.AppController
	overview   *views.OverviewView
	detail     *views.DetailView
	navigator  *views.Navigator
	watcher    *watcher.Watcher
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	store, err := storage.NewStore(cfg.DataRoot)
	if err != nil {
		return nil, err
	}

	controller := controllers.NewAppController(store, launch.NewShellOpener(), log)
	if err := controller.Load(); err != nil {
		return nil, err
	}

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		log:        log,
		controller: controller,
		overview:   views.NewOverviewView(),
		detail:     views.NewDetailView(),
		navigator:  views.NewNavigator(window),
	}

	controller.SetNotifier(application.notify)
	application.setupHandlers()

	// The watcher is best-effort: without it the app still works, the
	// user just refreshes by hand.
	dataWatcher, err := watcher.New(store.Root(), log, application.handleExternalChange)
	if err != nil {
		log.Warning("Application", "data root watcher unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		application.watcher = dataWatcher
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":   AppVersion,
		"data_root": store.Root(),
		"folders":   controller.Folders().Len(),
	})
	return application, nil
}

// Run shows the overview screen and enters the Fyne event loop.
func (a *Application) Run() {
	a.window.SetCloseIntercept(func() {
		a.cleanup()
		a.window.Close()
	})

	a.showOverview()
	a.window.ShowAndRun()
}

func (a *Application) cleanup() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	a.log.Info("Application", "shutdown complete", nil)
}

func (a *Application) setupHandlers() {
	a.overview.SetCreateHandler(func(name string) {
		a.controller.CreateFolder(name)
		a.refreshOverview()
	})
	a.overview.SetDeleteHandler(func() {
		a.controller.DeleteSelectedFolder()
		a.refreshOverview()
	})
	a.overview.SetRunHandler(a.controller.RunSelectedFolder)
	a.overview.SetRefreshHandler(a.reload)
	a.overview.SetSelectHandler(a.controller.SelectFolder)
	a.overview.SetOpenHandler(a.showDetail)

	a.detail.SetReturnHandler(a.showOverview)
	a.detail.SetAddProgramHandler(a.promptProgram)
	a.detail.SetAddURLHandler(func(raw string) {
		folder := a.detail.Folder()
		if folder == nil {
			return
		}
		if a.controller.AddURL(folder, raw) != nil {
			a.detail.RefreshItems()
		}
	})
	a.detail.SetToggleHandler(a.controller.ToggleItem)
	a.detail.SetRemoveHandler(func() {
		folder := a.detail.Folder()
		if folder == nil {
			return
		}
		a.controller.RemoveSelectedItems(folder)
		a.detail.RefreshItems()
	})
	a.detail.SetRunHandler(func() {
		if folder := a.detail.Folder(); folder != nil {
			a.controller.RunSelectedItems(folder)
		}
	})
}

// promptProgram asks for an executable and adds it to the current folder.
func (a *Application) promptProgram() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		folder := a.detail.Folder()
		if folder == nil {
			return
		}
		if a.controller.AddProgram(folder, path) != nil {
			a.detail.RefreshItems()
		}
	}, a.window)
}

func (a *Application) showOverview() {
	a.refreshOverview()
	a.navigator.Show(a.overview.GetContainer())
}

func (a *Application) showDetail(folder *models.Folder) {
	a.detail.SetFolder(folder)
	a.navigator.Show(a.detail.GetContainer())
}

func (a *Application) refreshOverview() {
	folders := a.controller.Folders().All()
	a.overview.SetFolders(folders)

	items := 0
	for _, f := range folders {
		items += len(f.Items)
	}
	a.overview.SetCounts(len(folders), items)
}

// reload re-reads the on-disk state and returns to the overview, since the
// detail screen may be showing a folder that no longer exists.
func (a *Application) reload() {
	if err := a.controller.Load(); err != nil {
		return
	}
	a.showOverview()
	a.overview.SetStatus("Reloaded from disk")
}

// handleExternalChange runs on the watcher goroutine. The user decides when
// to refresh; unsolicited reloads would stomp their selections.
func (a *Application) handleExternalChange() {
	a.log.Info("Application", "data root changed on disk", nil)
	a.overview.SetStatus("Data folder changed on disk, press Refresh")
}

// notify surfaces a non-fatal problem without interrupting the event flow.
func (a *Application) notify(title, message string) {
	a.overview.SetStatus(title)
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), a.window)
	})
}
