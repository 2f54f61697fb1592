// Package compensation models an offer where a single equity percentage drives salary,
// exit buyout and yearly compensation.
//
// Only equity and profit are stored. Salary is a read/write view onto equity (setting it
// runs the inverse formula), the buyout percentage is a read-only view, and the valuation
// is fixed by the terms. All inputs are clamped and snapped onto their step grid; no
// operation returns an error.
package compensation
