package gl2d

// DefaultPinchSensitivity is the zoom change per unit of pinch delta.
const DefaultPinchSensitivity float32 = 0.02

// ViewerOption configures a Viewer during creation.
//
// Example:
//
//	v := gl2d.NewViewer(
//		gl2d.WithCameraOptions(gl2d.WithZoomRange(0.5, 4)),
//		gl2d.WithBackground(gl2d.White),
//	)
type ViewerOption func(*viewerOptions)

type viewerOptions struct {
	cameraOpts       []CameraOption
	pinchSensitivity float32
	background       Color
}

func defaultViewerOptions() viewerOptions {
	return viewerOptions{
		pinchSensitivity: DefaultPinchSensitivity,
		background:       Transparent,
	}
}

// WithCameraOptions forwards options to the Viewer's camera, for example
// WithZoomRange.
func WithCameraOptions(opts ...CameraOption) ViewerOption {
	return func(o *viewerOptions) {
		o.cameraOpts = append(o.cameraOpts, opts...)
	}
}

// WithPinchSensitivity sets how strongly pinch deltas zoom. Non-positive
// values are ignored.
func WithPinchSensitivity(s float32) ViewerOption {
	return func(o *viewerOptions) {
		if s > 0 {
			o.pinchSensitivity = s
		}
	}
}

// WithBackground sets the clear color handed to consumers.
func WithBackground(c Color) ViewerOption {
	return func(o *viewerOptions) {
		o.background = c
	}
}
