package validation

// Error messages
const (
	ErrMsgReadData    = "failed to read data file"
	ErrMsgLoadSchema  = "failed to load schema"
	ErrMsgParseData   = "failed to parse JSON data"
	ErrMsgParseSchema = "failed to parse schema JSON"
)
