package wcsv

// ============================================================================
// Public API - Direct Parsing
// ============================================================================

// ParseBytes decodes data and returns all of its records.
func ParseBytes(data []byte, opts ReaderOptions) ([][]string, error) {
	r, err := NewReaderBytes(data, opts)
	if err != nil {
		return nil, err
	}
	return r.ReadAll(), nil
}

// ParseBytesStreaming decodes data and invokes callback for each record in
// order. If callback returns an error, parsing stops and that error is
// returned. The record slice is not reused between calls.
func ParseBytesStreaming(data []byte, opts ReaderOptions, callback func([]string) error) error {
	r, err := NewReaderBytes(data, opts)
	if err != nil {
		return err
	}
	for _, record := range r.Records() {
		if err := callback(record); err != nil {
			return err
		}
	}
	return nil
}
