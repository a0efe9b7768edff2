// Package binder adapts the validated-decode pipeline to HTTP request
// handling.
//
// A Binder wraps one type validator: it enforces the JSON media type, caps
// the body size, runs the pipeline (decode, optional schema pre-check, bind,
// validate), and renders any rejection as a 400 response with a flat errors
// array:
//
//	{"errors": [{"path": "/val", "message": "the number must be <= 1000."}]}
//
// Validation messages are localized per request from the Accept-Language
// header when the binder is constructed with a translator.
package binder
