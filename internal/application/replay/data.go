package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	MX  int  `json:"mx"`            // MouseX
	MY  int  `json:"my"`            // MouseY
	MC  bool `json:"mc,omitempty"`  // MouseClick
	Esc bool `json:"esc,omitempty"` // Escape
}

// ReplayData contains all data needed to replay a menu session
type ReplayData struct {
	Version   string       `json:"version"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
