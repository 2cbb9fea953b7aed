package replay

// Version is the replay file format version
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	X bool `json:"x,omitempty"` // Fire
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Reason    string       `json:"reason,omitempty"`
	Score     int          `json:"score,omitempty"`
	Frames    []FrameInput `json:"frames"`
}
