package throwback

import "errors"

var (
	// ErrContentStore is returned when the content store fails to answer a query.
	// The whole computation is aborted, no partial result is returned.
	ErrContentStore = errors.New("content store query failed")

	// ErrMalformedSettings is returned by a SettingsRepository when the stored record can not be decoded.
	ErrMalformedSettings = errors.New("malformed throwback settings record")

	// ErrNilStore is returned when no content store was provided.
	ErrNilStore = errors.New("content store is nil")
)
