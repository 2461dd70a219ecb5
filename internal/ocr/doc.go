// Package ocr reads the unit label printed on a gauge dial face using
// Tesseract, for configurations that leave the unit blank.
//
// OCR requires CGO and a system Tesseract installation; binaries built
// without CGO get a stub that reports OCR as unavailable. Callers treat an
// empty result as "keep the configured unit": OCR only ever fills a gap,
// it never overrides an explicit calibration.
package ocr
