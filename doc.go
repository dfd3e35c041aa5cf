// Package profit implements a small-business profit-accounting engine.
//
// It turns a batch of courier order rows, a tiered unit-cost schedule per
// product, a ledger of dated expenses, and a roster of profit-sharing
// partners into a profit report: revenue, cost of goods sold, net profit,
// and a per-partner payout, optionally reduced to a net take-home through
// fixed personal deductions.
//
// The engine is a pure, synchronous computation. Given a snapshot of its
// inputs it produces one ProfitReport with no side effects; callers re-run
// ComputeReport whenever any input changes. Persistence, CSV decoding and
// document rendering live at the edges (the store files, the csv reader and
// the renderer package) and never leak into the computation.
package profit
