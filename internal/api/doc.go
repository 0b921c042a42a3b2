// Package api handles incoming HTTP requests, request validation and
// response formatting. It translates HTTP concerns into calls on the
// apartment service and renders calculation results as JSON, plain text
// reports or spreadsheets.
package api
