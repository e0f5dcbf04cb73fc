package replay

import "github.com/younwookim/arena/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F   int  `json:"f"`             // Tick number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	Dsh bool `json:"dsh,omitempty"` // DashPressed
	Blk bool `json:"blk,omitempty"` // BlockPressed
	FP  bool `json:"fp,omitempty"`  // FirePressed
	FH  bool `json:"fh,omitempty"`  // FireHeld
	MX  int  `json:"mx"`            // MouseX
	MY  int  `json:"my"`            // MouseY
	S   int  `json:"s,omitempty"`   // Slot
	RCP bool `json:"rcp,omitempty"` // WheelPressed
	RCR bool `json:"rcr,omitempty"` // WheelReleased
	OK  bool `json:"ok,omitempty"`  // Confirm
	Rty bool `json:"rty,omitempty"` // Retry
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	ID        string       `json:"id"`
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrame packs one tick of input
func NewFrame(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:   f,
		L:   in.Left,
		R:   in.Right,
		U:   in.Up,
		D:   in.Down,
		Dsh: in.DashPressed,
		Blk: in.BlockPressed,
		FP:  in.FirePressed,
		FH:  in.FireHeld,
		MX:  in.MouseX,
		MY:  in.MouseY,
		S:   in.Slot,
		RCP: in.WheelPressed,
		RCR: in.WheelReleased,
		OK:  in.Confirm,
		Rty: in.Retry,
	}
}

// Input unpacks the frame
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:          fi.L,
		Right:         fi.R,
		Up:            fi.U,
		Down:          fi.D,
		DashPressed:   fi.Dsh,
		BlockPressed:  fi.Blk,
		FirePressed:   fi.FP,
		FireHeld:      fi.FH,
		MouseX:        fi.MX,
		MouseY:        fi.MY,
		Slot:          fi.S,
		WheelPressed:  fi.RCP,
		WheelReleased: fi.RCR,
		Confirm:       fi.OK,
		Retry:         fi.Rty,
	}
}
