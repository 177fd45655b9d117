// Package resource bounds the resources used by bulk archive transfers.
//
// A Controller combines a transfer slot budget, an in-flight memory budget
// and an IO byte-rate limiter. A nil *Controller imposes no limits.
package resource
