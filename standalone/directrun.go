//go:build !libretro

package standalone

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/bridge"
	"github.com/user-none/estepdad/imageloader"
	"github.com/user-none/estepdad/lcd"
	"github.com/user-none/estepdad/standalone/storage"
	"github.com/user-none/estepdad/system"
)

// autosaveInterval is how many window frames pass between SaveRAM checks.
const autosaveInterval = 300

// Options are per-run overrides from the command line. Zero values keep
// the stored configuration.
type Options struct {
	Model         string
	StepsPerFrame int
	Fullscreen    bool
}

// directRunner implements ebiten.Game. It drives the Frame Driver from
// Update so the emulated system and the window share one goroutine.
type directRunner struct {
	info   emucore.SystemInfo
	config *storage.Config

	driver *bridge.Driver
	host   *windowHost
	image  *imageloader.Image
	path   string
	state  AppState

	input        *InputManager
	inputMapping InputMapping
	renderer     *FramebufferRenderer
	notification *Notification
	screenshots  *ScreenshotManager
	turbo        TurboState

	saves      saveTracker
	saveFrames int

	messageBg *ebiten.Image
}

// Run opens the window and runs until it is closed. imagePath may be
// empty; the most recent image is reopened, and failing that the window
// waits for an image to be opened or dropped.
func Run(newCore func() system.Core, imagePath string, opts Options) error {
	info := bridge.SystemInfo()

	config, err := prepareStorage(info)
	if err != nil {
		return err
	}

	driverCfg := config.DriverConfig()
	if opts.Model != "" {
		m, ok := system.ParseModel(opts.Model)
		if !ok {
			return fmt.Errorf("unknown model %q", opts.Model)
		}
		driverCfg.Model = m
	}
	if opts.StepsPerFrame > 0 {
		driverCfg.StepsPerFrame = opts.StepsPerFrame
	}

	host := newWindowHost()
	dr := &directRunner{
		info:         info,
		config:       config,
		driver:       bridge.NewDriver(newCore(), host, driverCfg),
		host:         host,
		state:        StateNoImage,
		input:        NewInputManager(),
		inputMapping: BuildMappingFromConfig(info.Buttons, config.Input.Keyboard, config.Input.Controller),
		renderer:     NewFramebufferRenderer(),
		notification: NewNotification(),
		screenshots:  NewScreenshotManager(),
	}

	if imagePath == "" {
		imagePath = config.RecentImage
	}
	if imagePath != "" {
		if err := dr.openPath(imagePath); err != nil {
			log.Printf("Warning: %v", err)
			dr.notification.ShowDefault("Could not open " + imagePath)
		}
	}

	dr.setupWindow(opts.Fullscreen)

	err = ebiten.RunGame(dr)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}

	dr.Close()
	return err
}

// prepareStorage creates the data directories and a default config.json on
// first run, then loads and corrects the configuration.
func prepareStorage(info emucore.SystemInfo) (*storage.Config, error) {
	storage.Init(info.DataDirName)
	if err := storage.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create data directories: %w", err)
	}
	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Printf("Warning: failed to create config: %v", err)
	}

	buttonNames := make([]string, 0, len(info.Buttons))
	for _, b := range info.Buttons {
		buttonNames = append(buttonNames, b.Name)
	}

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
		config = storage.DefaultConfig()
	}
	for _, msg := range storage.ValidateConfig(config, buttonNames) {
		log.Printf("Warning: config %s", msg)
	}
	return storage.CorrectConfig(config, buttonNames), nil
}

func (dr *directRunner) setupWindow(fullscreen bool) {
	ebiten.SetWindowTitle(dr.info.CoreName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(dr.info.Timing.FPS))

	scale := dr.config.Video.Scale
	ebiten.SetWindowSize(lcd.Width*scale, lcd.Height*scale)
	ebiten.SetWindowSizeLimits(lcd.Width*2, lcd.Height*2, -1, -1)
	if dr.config.Window.X != nil && dr.config.Window.Y != nil {
		ebiten.SetWindowPosition(*dr.config.Window.X, *dr.config.Window.Y)
	}
	ebiten.SetFullscreen(fullscreen || dr.config.Window.Fullscreen)
}

// openPath loads an image file or archive from disk.
func (dr *directRunner) openPath(path string) error {
	img, err := imageloader.Load(path, dr.info.Extensions)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	return dr.start(img, path)
}

// start replaces the running image with img. The previous image's SaveRAM
// is flushed first.
func (dr *directRunner) start(img *imageloader.Image, path string) error {
	dr.stop()

	if err := dr.driver.Load(img.Data); err != nil {
		return fmt.Errorf("failed to start %s: %w", img.Name, err)
	}
	dr.image = img
	dr.path = path

	save := dr.driver.Region(emucore.MemorySaveRAM)
	if save != nil {
		if _, err := storage.LoadSaveRAM(img.ID(), save); err != nil {
			log.Printf("Warning: save not restored: %v", err)
		}
	}
	dr.saves.Mark(save)
	dr.saveFrames = 0

	if path != "" {
		dr.config.RecentImage = path
	}
	dr.turbo.Reset()
	dr.state = StatePlaying
	ebiten.SetWindowTitle(dr.info.CoreName + " - " + img.Name)
	return nil
}

// stop flushes SaveRAM and unloads the current image, if any.
func (dr *directRunner) stop() {
	if !dr.driver.Loaded() {
		return
	}
	dr.flushSaveRAM()
	dr.driver.Unload()
	dr.host.reset()
	dr.image = nil
	dr.state = StateNoImage
}

// flushSaveRAM writes SaveRAM to disk when it changed since the last write.
func (dr *directRunner) flushSaveRAM() {
	if dr.image == nil {
		return
	}
	save := dr.driver.Region(emucore.MemorySaveRAM)
	if !dr.saves.Changed(save) {
		return
	}
	if err := storage.SaveSaveRAM(dr.image.ID(), save); err != nil {
		log.Printf("Warning: failed to write save: %v", err)
		return
	}
	dr.saves.Mark(save)
}

// Update implements ebiten.Game.
func (dr *directRunner) Update() error {
	if ebiten.IsWindowBeingClosed() {
		dr.rememberWindow()
		return ebiten.Termination
	}

	hk := dr.input.Update()

	if hk.Fullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if hk.Open {
		dr.promptOpen()
	}
	dr.handleDrop()

	if dr.state == StateNoImage {
		return nil
	}

	if hk.Pause {
		if dr.state == StatePaused {
			dr.state = StatePlaying
		} else {
			dr.state = StatePaused
			dr.flushSaveRAM()
		}
	}
	if hk.Reset {
		dr.reset()
	}
	if hk.Turbo {
		if m := dr.turbo.CycleMultiplier(); m == 1 {
			dr.notification.ShowShort("Normal speed")
		} else {
			dr.notification.ShowShort(fmt.Sprintf("Fast forward %dx", m))
		}
	}
	if hk.Screenshot {
		dr.takeScreenshot()
	}
	if hk.Copy {
		dr.copyScreenshot()
	}

	if dr.state != StatePlaying {
		return nil
	}

	gamepadID, hasGamepad := dr.input.Gamepad()
	dr.host.pending = PollButtons(dr.inputMapping, gamepadID, hasGamepad)

	for i := 0; i < dr.turbo.Read(); i++ {
		dr.driver.Tick()
	}

	dr.saveFrames++
	if dr.saveFrames >= autosaveInterval {
		dr.saveFrames = 0
		dr.flushSaveRAM()
	}
	return nil
}

// reset restarts the current image from its data, keeping SaveRAM.
func (dr *directRunner) reset() {
	img, path := dr.image, dr.path
	if err := dr.start(img, path); err != nil {
		log.Printf("Error: %v", err)
		dr.notification.ShowDefault("Reset failed")
		return
	}
	dr.notification.ShowShort("Reset")
}

func (dr *directRunner) promptOpen() {
	path, ok, err := PromptImagePath(dr.info.ConsoleName, dr.info.Extensions, dr.path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	if !ok {
		return
	}
	if err := dr.openPath(path); err != nil {
		log.Printf("Warning: %v", err)
		dr.notification.ShowDefault("Could not open image")
	}
}

// handleDrop loads the first file dropped on the window this frame.
func (dr *directRunner) handleDrop() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}

	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		log.Printf("Warning: failed to read dropped files: %v", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(files, e.Name())
		if err != nil {
			log.Printf("Warning: failed to read %s: %v", e.Name(), err)
			return
		}
		img, err := imageloader.LoadBytes(data, e.Name(), dr.info.Extensions)
		if err == nil {
			err = dr.start(img, "")
		}
		if err != nil {
			log.Printf("Warning: %v", err)
			dr.notification.ShowDefault("Could not open " + e.Name())
		}
		return
	}
}

func (dr *directRunner) takeScreenshot() {
	if !dr.host.hasFrame {
		return
	}
	path, err := dr.screenshots.TakeScreenshot(&dr.host.frame, dr.image.ID(), dr.config.Video.ScreenshotScale)
	if err != nil {
		log.Printf("Warning: screenshot failed: %v", err)
		dr.notification.ShowDefault("Screenshot failed")
		return
	}
	log.Printf("Screenshot saved to %s", path)
}

func (dr *directRunner) copyScreenshot() {
	if !dr.host.hasFrame {
		return
	}
	if err := dr.screenshots.CopyScreenshot(&dr.host.frame, dr.config.Video.ScreenshotScale); err != nil {
		log.Printf("Warning: %v", err)
		dr.notification.ShowDefault("Copy failed")
		return
	}
	dr.notification.ShowShort("Copied")
}

// rememberWindow stores the window mode and position for the next run.
func (dr *directRunner) rememberWindow() {
	dr.config.Window.Fullscreen = ebiten.IsFullscreen()
	if !dr.config.Window.Fullscreen {
		x, y := ebiten.WindowPosition()
		dr.config.Window.X = &x
		dr.config.Window.Y = &y
	}
}

// Draw implements ebiten.Game.
func (dr *directRunner) Draw(screen *ebiten.Image) {
	switch {
	case dr.state == StateNoImage:
		drawOverlayText(screen, "Ctrl+O or drop an image to start", &dr.messageBg, true)
	case dr.host.hasFrame:
		dr.renderer.DrawFramebuffer(screen, dr.host.pixels)
		if dr.config.Video.ShowLED && dr.host.ledKnown {
			dr.renderer.DrawLED(screen, dr.host.ledLit)
		}
	}

	if dr.state == StatePaused {
		drawOverlayText(screen, "Paused", &dr.messageBg, true)
	}
	dr.notification.Draw(screen)
}

// Layout implements ebiten.Game.
func (dr *directRunner) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

// Close flushes SaveRAM and persists the configuration.
func (dr *directRunner) Close() {
	dr.stop()
	if err := storage.SaveConfig(dr.config); err != nil {
		log.Printf("Warning: failed to save config: %v", err)
	}
}
