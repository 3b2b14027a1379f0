// Package flexui builds windows from declarative descriptions of their
// content.
//
// A window is a tree of widget creators. Building it produces a
// WindowTemplate holding the widget descriptors handed to the Host, the
// layout tree and the bindings between stores and widget properties:
//
//	count := flexui.NewStore(0)
//	tmpl, err := flexui.Window(flexui.WindowParams{
//		Title: "Counter", Width: 200, Height: 100,
//		Content: []flexui.WidgetCreator{
//			flexui.Label(flexui.LabelParams{Text: flexui.Bind(flexui.Compute(count, strconv.Itoa))}),
//			flexui.Spinner(flexui.SpinnerParams{Value: flexui.BindTwoWay(count)}),
//		},
//	}, flexui.WithHost(host))
//
// Sizes are Scales: pixels, weights sharing the space left over, or
// percentages of the parent. Stores notify their subscribers synchronously;
// while a template is open every change is written into the host's live
// widgets.
package flexui
