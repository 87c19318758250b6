// Package request implements the JSON request/reply protocol: parsing an
// incoming Request document, merging its overrides into a live
// configuration snapshot, fanning per-image work out across worker
// goroutines, and assembling the aggregated Reply.
package request

// Request is the client-supplied document, one JSON object per newline-
// terminated socket line. Every field besides Image/flags is an override
// for the corresponding live Config section; an absent JSON key leaves the
// live value untouched.
type Request struct {
	Image     *string `json:"image,omitempty"`
	AffectAll bool    `json:"affect_all,omitempty"`

	WSet   bool `json:"w_set,omitempty"`
	WCache bool `json:"w_cache,omitempty"`
	CSet   bool `json:"c_set,omitempty"`
	CCache bool `json:"c_cache,omitempty"`

	Displays    []RequestDisplay `json:"displays,omitempty"`
	Templates   []string         `json:"templates,omitempty"`
	ResizeAlg   *string          `json:"resize_alg,omitempty"`
	SetCommand  *string          `json:"set_command,omitempty"`

	Contrast *float64 `json:"contrast,omitempty"`
	Brightness *int32 `json:"brightness,omitempty"`
	Hue      *int32   `json:"hue,omitempty"`
	Blur     *float64 `json:"blur,omitempty"`
	Invert   bool     `json:"invert,omitempty"`
	FlipH    bool     `json:"flip_h,omitempty"`
	FlipV    bool     `json:"flip_v,omitempty"`

	RwalThumb  *string `json:"rwal_thumb,omitempty"`
	RwalClamp  *string `json:"rwal_clamp,omitempty"`
	RwalAccent *uint32 `json:"rwal_accent,omitempty"`
	RwalCount  *uint32 `json:"rwal_count,omitempty"`
	RwalOrder  *string `json:"rwal_order,omitempty"`

	GetDisplays            bool `json:"get_displays,omitempty"`
	GetTemplates           bool `json:"get_templates,omitempty"`
	GetCurrentColorscheme  bool `json:"get_current_colorscheme,omitempty"`
	GetImageOps            bool `json:"get_image_ops,omitempty"`
	GetRwalParams          bool `json:"get_rwal_params,omitempty"`
	GetConfig              bool `json:"get_config,omitempty"`
	GetWCache              bool `json:"get_w_cache,omitempty"`
	GetCCache              bool `json:"get_c_cache,omitempty"`
}

// RequestDisplay is the wire shape of one display override entry.
type RequestDisplay struct {
	Name string `json:"name"`
	W    uint32 `json:"w"`
	H    uint32 `json:"h"`
	X    uint32 `json:"x"`
	Y    uint32 `json:"y"`
}

// Reply is the JSON document written back on the socket.
type Reply struct {
	StartTime    int64  `json:"start_time"`
	EndTime      int64  `json:"end_time"`
	TimeElapsed  int64  `json:"time_elapsed"`
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`

	Config             any      `json:"config,omitempty"`
	WCache             []string `json:"w_cache,omitempty"`
	CCache             []string `json:"c_cache,omitempty"`
	Displays           any      `json:"displays,omitempty"`
	Templates          []string `json:"templates,omitempty"`
	CurrentColorscheme []string `json:"current_colorscheme,omitempty"`
	ImageOps           any      `json:"image_ops,omitempty"`
	RwalParams         any      `json:"rwal_params,omitempty"`
}
