package graphql

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/rediwo/tweenlog/diag"
	"github.com/rediwo/tweenlog/sink"
)

// EntryReader is a store that can return recent entries
type EntryReader interface {
	Recent(ctx context.Context, severity *diag.Severity, limit int) ([]sink.Entry, error)
}

// Source is what the schema resolves against
type Source struct {
	Debugger *diag.Debugger
	Recorder *sink.Recorder
	// Store is optional
	Store EntryReader
}

// NewSchema builds the GraphQL schema for src
func NewSchema(src Source) (*graphql.Schema, error) {
	if src.Debugger == nil || src.Recorder == nil {
		return nil, fmt.Errorf("debugger and recorder are required")
	}
	r := &resolver{src: src}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"entries": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(entryType))),
				Args: graphql.FieldConfigArgument{
					"severity": &graphql.ArgumentConfig{Type: SeverityEnum},
					"limit":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 100},
					"source":   &graphql.ArgumentConfig{Type: EntrySourceEnum, DefaultValue: "memory"},
				},
				Resolve: r.entries,
			},
			"settings": &graphql.Field{
				Type:    graphql.NewNonNull(settingsType),
				Resolve: r.settings,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"setLogBehaviour": &graphql.Field{
				Type:        graphql.NewNonNull(settingsType),
				Description: "default, verbose, or anything else for errors only",
				Args: graphql.FieldConfigArgument{
					"value": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.setLogBehaviour,
			},
			"setSafeModeLogBehaviour": &graphql.Field{
				Type: graphql.NewNonNull(settingsType),
				Args: graphql.FieldConfigArgument{
					"value": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.setSafeModeLogBehaviour,
			},
			"setDebugMode": &graphql.Field{
				Type: graphql.NewNonNull(settingsType),
				Args: graphql.FieldConfigArgument{
					"on": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
				},
				Resolve: r.setDebugMode,
			},
			"log": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Boolean),
				Description: "Sends a message through the debugger. Returns whether it reached the sinks.",
				Args: graphql.FieldConfigArgument{
					"severity": &graphql.ArgumentConfig{Type: graphql.NewNonNull(SeverityEnum)},
					"message":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.log,
			},
			"clearEntries": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					r.src.Recorder.Reset()
					return true, nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	return &schema, nil
}

type resolver struct {
	src Source
}

func (r *resolver) entries(p graphql.ResolveParams) (any, error) {
	var severity *diag.Severity
	if v, ok := p.Args["severity"].(diag.Severity); ok {
		severity = &v
	}
	limit, _ := p.Args["limit"].(int)

	if source, _ := p.Args["source"].(string); source == "store" {
		if r.src.Store == nil {
			return nil, fmt.Errorf("no store configured")
		}
		entries, err := r.src.Store.Recent(p.Context, severity, limit)
		if err != nil {
			return nil, err
		}
		if entries == nil {
			entries = []sink.Entry{}
		}
		return entries, nil
	}
	return r.src.Recorder.Entries(severity, limit), nil
}

func (r *resolver) settings(p graphql.ResolveParams) (any, error) {
	d := r.src.Debugger
	cfg := d.Config()
	return map[string]any{
		"logBehaviour":                   cfg.LogBehaviour.String(),
		"logPriority":                    int(d.LogPriority()),
		"safeModeLogBehaviour":           cfg.SafeModeLogBehaviour.String(),
		"debugMode":                      cfg.DebugMode,
		"shouldLogSafeModeCapturedError": d.ShouldLogSafeModeCapturedError(),
	}, nil
}

func (r *resolver) setLogBehaviour(p graphql.ResolveParams) (any, error) {
	value, _ := p.Args["value"].(string)
	r.src.Debugger.SetLogPriority(diag.ParseLogBehaviour(value))
	return r.settings(p)
}

func (r *resolver) setSafeModeLogBehaviour(p graphql.ResolveParams) (any, error) {
	value, _ := p.Args["value"].(string)
	b, err := diag.ParseSafeModeLogBehaviour(value)
	if err != nil {
		return nil, err
	}
	r.src.Debugger.SetSafeModeLogBehaviour(b)
	return r.settings(p)
}

func (r *resolver) setDebugMode(p graphql.ResolveParams) (any, error) {
	on, _ := p.Args["on"].(bool)
	r.src.Debugger.SetDebugMode(on)
	return r.settings(p)
}

func (r *resolver) log(p graphql.ResolveParams) (any, error) {
	severity, _ := p.Args["severity"].(diag.Severity)
	message, _ := p.Args["message"].(string)
	return r.src.Debugger.LogAt(severity, message, nil), nil
}
