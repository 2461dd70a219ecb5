// Package detect defines the gauge detector contract and provides a
// heuristic geometric detector built on classical computer vision.
//
// The Detector interface models the external pose-estimation capability as
// an injected strategy: given an image it returns bounding boxes, ordered
// keypoints (index 0 = gauge center, index 1 = needle tip) with per-point
// confidences, and an overall detection confidence, all normalized to
// [0, 1]. Downstream code never depends on how detections were produced,
// so a trained model wrapper, the Hough detector here, and the Static stub
// are interchangeable.
//
// # Heuristic Detection
//
// The Hough detector finds dial faces with a Hough circle transform over a
// gradient edge map (Gaussian-blurred first to suppress noise), then
// locates the needle by scanning edge density along rays from each dial
// center. It works best on clean, frontal, high-contrast dials; for
// photographs in the wild a trained pose model behind the same interface
// is the better choice.
//
// # Coordinate System
//
// All coordinates are image pixels with origin at top-left, X rightward,
// Y downward. Angle conventions are converted downstream.
package detect
