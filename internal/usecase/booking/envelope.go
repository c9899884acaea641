package booking

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform result crossing the service boundary. On error,
// Data is always a plain string.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func Success(data any) Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return Envelope{Status: StatusSuccess, Data: data}
}

func Failure(err error) Envelope {
	return Envelope{Status: StatusError, Data: Message(err)}
}

// Wrap folds a typed result and error into an envelope.
func Wrap(result any, err error) Envelope {
	if err != nil {
		return Failure(err)
	}
	return Success(result)
}

func (e Envelope) IsSuccess() bool {
	return e.Status == StatusSuccess
}

// Message renders err for requesters. Wrapping context is kept, stack traces are not.
func Message(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
