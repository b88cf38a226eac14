package model

// Path represents a file system path.
type Path string

// Input is one report file handed to the parser: its display name and raw bytes.
type Input struct {
	Name string
	Path Path
	Data []byte
}
