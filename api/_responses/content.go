package _responses

import "io"

type EmptyResponse struct{}

type DoNotCacheResponse struct {
	Payload interface{}
}

type HtmlResponse struct {
	HTML string
}

type DownloadResponse struct {
	ContentType       string
	Filename          string
	SizeBytes         int64
	Data              io.ReadCloser
	TargetDisposition string
}
