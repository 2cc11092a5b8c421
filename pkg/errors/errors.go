package errors

import "fmt"

var (
	// Общие
	ErrNotFound = fmt.Errorf("запись не найдена")

	// additionalProperties хранится как сырой JSON-текст; эта ошибка
	// означает, что сохранённый текст не разбирается при чтении.
	ErrCorruptedProperties = fmt.Errorf("повреждённый JSON в additionalProperties")
)

// HttpError несёт код ответа и сообщение, которое можно отдать клиенту.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
