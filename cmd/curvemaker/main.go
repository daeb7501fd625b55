/*
Command curvemaker is an interactive editor for cubic splines.

The window shows a grid of graphs. In each graph, clicking right of the
last control point adds a new one; control points and the tangent handles
at both ends of a spline may be dragged around.

Usage:

	curvemaker [-settings file.json] [-trace level]

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/npillmayer/curvemaker/editor"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/image/colornames"
)

func main() {
	settingsFile := flag.String("settings", "", "JSON settings file")
	traceLevel := flag.String("trace", "", "trace level (Error, Info, Debug)")
	noFill := flag.Bool("nofill", false, "do not shade the area under curves")
	flag.Parse()

	settings := DefaultSettings()
	if *settingsFile != "" {
		if err := LoadSettings(*settingsFile, &settings); err != nil {
			log.Fatalf("curvemaker: %v", err)
		}
	}
	if *traceLevel != "" {
		settings.Trace = *traceLevel
	}
	if *noFill {
		settings.Fill = false
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("curvemaker: %v", err)
	}
	setupTracing(settings.Trace)

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	if err := ebiten.RunGame(NewGame(settings, editorStyle(settings))); err != nil {
		log.Fatalf("curvemaker: %v", err)
	}
}

// setupTracing lets all packages trace to a single logger.
func setupTracing(level string) {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	tracer.Infof("tracing at level %s", tracer.GetTraceLevel())
}

func editorStyle(s Settings) editor.Style {
	style := editor.DefaultStyle()
	if s.Fill {
		style.FillColor = editor.Translucent(colornames.Cornflowerblue, 0x40)
	}
	return style
}
