package rcontext

import (
	"context"
	"net/http"

	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/config"
	"github.com/sirupsen/logrus"
)

func Testing(cfg config.MainConfig) RequestContext {
	return RequestContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"test": true}),
		Config:  cfg,
		Request: nil,
	}.populate()
}

type RequestContext struct {
	context.Context

	// These are also stored on the context object itself
	Log     *logrus.Entry     // scoop.logger
	Config  config.MainConfig // scoop.config
	Request *http.Request     // scoop.request
}

func (c RequestContext) populate() RequestContext {
	c.Context = context.WithValue(c.Context, common.ContextLogger, c.Log)
	c.Context = context.WithValue(c.Context, common.ContextConfig, c.Config)
	c.Context = context.WithValue(c.Context, common.ContextRequest, c.Request)
	return c
}

func (c RequestContext) ReplaceLogger(log *logrus.Entry) RequestContext {
	ctx := context.WithValue(c.Context, common.ContextLogger, log)
	return RequestContext{
		Context: ctx,
		Log:     log,
		Config:  c.Config,
		Request: c.Request,
	}
}

func (c RequestContext) LogWithFields(fields logrus.Fields) RequestContext {
	return c.ReplaceLogger(c.Log.WithFields(fields))
}
