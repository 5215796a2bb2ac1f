package ports

// DocumentRenderer produces the fixed-layout PDF bytes to be signed.
type DocumentRenderer interface {
	Render() ([]byte, error)
}
