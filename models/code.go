package models

// CodeRecord holds the structure for a single SHiFT code entry as stored
// in the backing codes file. Expires and Source are optional; an empty
// Expires means the code is permanent or its expiry is unknown.
type CodeRecord struct {
	Code    string `json:"code"`
	Reward  string `json:"reward"`
	Expires string `json:"expires,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Snapshot holds the full contents of the backing codes file at a point
// in time. Codes are kept in display order, newest first by convention.
type Snapshot struct {
	Updated string       `json:"updated"`
	Codes   []CodeRecord `json:"codes"`
}
