package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/logger"
	"github.com/rediwo/tweenlog/registry"
	"github.com/rediwo/tweenlog/script"
	"github.com/rediwo/tweenlog/sink"
)

// Runtime is a Debugger wired to the configured console, recorder, store and hook
type Runtime struct {
	Debugger *diag.Debugger
	Recorder *sink.Recorder
	Store    registry.Store
	Console  *logger.Console
	Logger   *logger.DefaultLogger
}

// Build assembles a Runtime. The caller must Close it.
func (c *Config) Build(ctx context.Context) (*Runtime, error) {
	rt := &Runtime{
		Logger:   logger.NewDefaultLogger("tweenlog"),
		Recorder: sink.NewRecorder(c.Store.RecorderCapacity),
	}
	rt.Logger.SetLevel(logger.ParseLogLevel(c.LogLevel))

	sinks := sink.Multi{rt.Recorder}

	if !c.Console.Disabled {
		rt.Console = logger.NewConsole()
		rt.Console.SetColor(c.Console.Color)
		rt.Console.SetTimestamps(c.Console.Timestamps)
		rt.Console.SetForceStdErr(c.Console.ForceStdErr)
		sinks = append(sinks, diag.ConsoleSink(rt.Console))
	}

	if c.Store.URI != "" {
		store, err := openStore(ctx, c.Store.URI, rt.Logger)
		if err != nil {
			return nil, err
		}
		rt.Store = store
		sinks = append(sinks, store)
		rt.Logger.Debug("storing entries in %s", redact(c.Store.URI))
	}

	hook, err := c.buildHook(rt.Logger)
	if err != nil {
		rt.Close()
		return nil, err
	}

	dcfg := c.DiagConfig()
	dcfg.OnWillLog = hook
	rt.Debugger = diag.New(sinks, dcfg)
	return rt, nil
}

func (c *Config) buildHook(log logger.Logger) (diag.Hook, error) {
	var hooks []diag.Hook

	if c.Hook.MinSeverity != "" {
		minSeverity, err := diag.ParseSeverity(c.Hook.MinSeverity)
		if err != nil {
			return nil, err
		}
		hooks = append(hooks, diag.MinSeverityHook(minSeverity))
	}

	if c.Hook.Script != "" {
		h, err := script.Load(c.Hook.Script, log)
		if err != nil {
			return nil, err
		}
		if c.Hook.TimeoutMS > 0 {
			h.SetTimeout(time.Duration(c.Hook.TimeoutMS) * time.Millisecond)
		}
		hooks = append(hooks, h.Hook())
		log.Debug("loaded hook script %s", c.Hook.Script)
	}

	return diag.ChainHooks(hooks...), nil
}

func openStore(ctx context.Context, uri string, log logger.Logger) (registry.Store, error) {
	store, err := registry.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	store.SetLogger(log)
	return store, nil
}

// Close releases the store, if any
func (rt *Runtime) Close() error {
	if rt.Store != nil {
		return rt.Store.Close()
	}
	return nil
}

// redact hides the password part of a URI for logging
func redact(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return uri
	}
	userinfo := rest[:at]
	if user, _, hasPass := strings.Cut(userinfo, ":"); hasPass {
		userinfo = user + ":***"
	}
	return scheme + "://" + userinfo + rest[at:]
}
