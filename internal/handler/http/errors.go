package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	ErrNoIdentity               = errors.New("request is not authenticated")
	ErrForbidden                = errors.New("access denied")
	ErrInvalidJSON              = errors.New("invalid JSON body")
	ErrInvalidMultipartForm     = errors.New("invalid multipart form")
	ErrRouteNotFound            = errors.New("route not found")
)
