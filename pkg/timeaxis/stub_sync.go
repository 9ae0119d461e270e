package timeaxis

import "github.com/go-drift/charts/pkg/chart"

// SyncPriceScales reconciles the corner stubs against the current price-scale
// options. Call it on every price-scale-options-changed notification; it is
// idempotent.
//
// Visibility changes are always expressed as destroy+recreate, never as an
// in-place mutation, so a stub is either fully constructed or absent.
func (a *Axis) SyncPriceScales(left, right chart.PriceScaleOptions) {
	if a.released {
		return
	}
	a.leftScale = left
	a.rightScale = right
	a.leftStub = a.syncStub(a.leftStub, left, func() bool {
		return a.leftScale.BorderVisible && a.model.Options().BorderVisible
	})
	a.rightStub = a.syncStub(a.rightStub, right, func() bool {
		return a.rightScale.BorderVisible && a.model.Options().BorderVisible
	})
}

func (a *Axis) syncStub(stub *axisStub, opts chart.PriceScaleOptions, borderVisible func() bool) *axisStub {
	if !opts.Visible {
		if stub != nil {
			stub.Release()
		}
		return nil
	}
	if stub != nil {
		return stub
	}
	return newAxisStub(a.factory, a.options, borderVisible)
}

// StubWidths returns the current widths of the left and right corner stubs;
// an absent stub reports zero.
func (a *Axis) StubWidths() (left, right float64) {
	if a.leftStub != nil {
		left = a.leftStub.Width()
	}
	if a.rightStub != nil {
		right = a.rightStub.Width()
	}
	return left, right
}

// StubBorderVisible reports the border visibility of the corner stub on the
// given side; an absent stub reports false.
func (a *Axis) StubBorderVisible(leftSide bool) bool {
	stub := a.rightStub
	if leftSide {
		stub = a.leftStub
	}
	if stub == nil {
		return false
	}
	return stub.BorderVisible()
}
