package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/arena/internal/application/system"
)

var slotKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// readDevices samples keyboard and mouse for one tick
func readDevices() system.InputState {
	mx, my := ebiten.CursorPosition()

	slot := 0
	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			slot = i + 1
		}
	}

	return system.InputState{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD),
		Up:            ebiten.IsKeyPressed(ebiten.KeyW),
		Down:          ebiten.IsKeyPressed(ebiten.KeyS),
		DashPressed:   inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft),
		BlockPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		FirePressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		FireHeld:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MouseX:        mx,
		MouseY:        my,
		Slot:          slot,
		WheelPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		WheelReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		Confirm:       inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Retry:         inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// readKeys samples the scene controls
func readKeys() Controls {
	return Controls{
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Save:  inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}
