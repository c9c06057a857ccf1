// Package ui contains the fyne IndicatorBar widget and helpers for driving it
// from outside the UI thread.
package ui

import "fyne.io/fyne/v2"

// mainRunner is implemented by drivers that can queue work on the UI thread.
type mainRunner interface {
	RunOnMain(func())
}

type mainCaller interface {
	CallOnMain(func())
}

// onMain runs f on the UI thread when the driver can queue it. The fyne 2.5
// drivers cannot, so f runs inline on the caller's goroutine; IndicatorBar
// serialises its own state for that case.
var onMain = func(f func()) {
	if f == nil {
		return
	}
	var drv fyne.Driver
	if a := fyne.CurrentApp(); a != nil {
		drv = a.Driver()
	}
	switch d := drv.(type) {
	case mainRunner:
		d.RunOnMain(f)
	case mainCaller:
		d.CallOnMain(f)
	default:
		f()
	}
}

// CallOnMain schedules f on the UI thread.
func CallOnMain(f func()) { onMain(f) }
