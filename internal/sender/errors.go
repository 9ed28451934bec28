package sender

import "errors"

var (
	// ErrMalformedEndpoint возвращается, если адрес приёмника не является
	// корректным URL.
	ErrMalformedEndpoint = errors.New("malformed endpoint")

	// ErrTransport возвращается при ошибке соединения, записи запроса или
	// чтения ответа.
	ErrTransport = errors.New("transport failure")

	// ErrUnexpectedStatus возвращается в строгом режиме, если код ответа
	// не входит в диапазон 2xx.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)
