//go:build darwin

package appkit

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
// #include <stdlib.h>
//
// static void floatclip_on_main(void (^block)(void)) {
//     if ([NSThread isMainThread]) {
//         block();
//     } else {
//         dispatch_sync(dispatch_get_main_queue(), block);
//     }
// }
//
// static NSWindow *floatclip_find(const char *name) {
//     NSString *ident = [NSString stringWithUTF8String:name];
//     for (NSWindow *w in [NSApp windows]) {
//         if ([[w identifier] isEqualToString:ident]) {
//             return w;
//         }
//     }
//     return nil;
// }
//
// static int floatclip_create_panel(const char *name) {
//     __block int ok = 0;
//     floatclip_on_main(^{
//         if (floatclip_find(name) != nil) {
//             ok = 1;
//             return;
//         }
//         NSString *ident = [NSString stringWithUTF8String:name];
//         NSPanel *p = [[NSPanel alloc]
//             initWithContentRect:NSMakeRect(0, 0, 480, 320)
//                       styleMask:NSWindowStyleMaskTitled | NSWindowStyleMaskClosable
//                         backing:NSBackingStoreBuffered
//                           defer:NO];
//         if (p == nil) {
//             return;
//         }
//         [p setIdentifier:ident];
//         [p setTitle:ident];
//         [p setReleasedWhenClosed:NO];
//         [p setHidesOnDeactivate:NO];
//         [p center];
//         ok = 1;
//     });
//     return ok;
// }
//
// static int floatclip_exists(const char *name) {
//     __block int ok = 0;
//     floatclip_on_main(^{ ok = floatclip_find(name) != nil; });
//     return ok;
// }
//
// static void floatclip_set_level(const char *name, long level) {
//     floatclip_on_main(^{ [floatclip_find(name) setLevel:(NSWindowLevel)level]; });
// }
//
// static void floatclip_set_style_mask(const char *name, unsigned long mask) {
//     floatclip_on_main(^{ [floatclip_find(name) setStyleMask:(NSWindowStyleMask)mask]; });
// }
//
// static void floatclip_set_collection(const char *name, unsigned long behavior) {
//     floatclip_on_main(^{
//         [floatclip_find(name) setCollectionBehavior:(NSWindowCollectionBehavior)behavior];
//     });
// }
//
// static void floatclip_show(const char *name) {
//     floatclip_on_main(^{ [floatclip_find(name) orderFrontRegardless]; });
// }
//
// static void floatclip_order_out(const char *name) {
//     floatclip_on_main(^{ [floatclip_find(name) orderOut:nil]; });
// }
//
// static void floatclip_hide_app(void) {
//     floatclip_on_main(^{ [NSApp hide:nil]; });
// }
//
// static void floatclip_accessory(void) {
//     floatclip_on_main(^{
//         [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
//     });
// }
import "C"

import (
	"fmt"
	"unsafe"

	"go.klb.dev/floatclip/internal/panel"
)

// Desktop creates and locates the application's Cocoa windows.
type Desktop struct{}

// New returns the Cocoa desktop.
func New() *Desktop { return &Desktop{} }

// Name returns a human-readable name for the window backend.
func (*Desktop) Name() string { return "Cocoa" }

// CreatePanel creates an NSPanel identified by name. Creating an existing
// name is a no-op.
func (*Desktop) CreatePanel(name string) error {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	if C.floatclip_create_panel(cs) == 0 {
		return fmt.Errorf("create panel %q: NSPanel init failed", name)
	}
	return nil
}

// Lookup returns the window whose identifier is name.
func (*Desktop) Lookup(name string) (panel.Window, error) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	if C.floatclip_exists(cs) == 0 {
		return nil, lookupErr(name)
	}
	return &cocoaWindow{name: name}, nil
}

// HideApplication hides every window of the application, like Cmd-H.
func (*Desktop) HideApplication() error {
	C.floatclip_hide_app()
	return nil
}

// SetAccessory removes the Dock icon and the Cmd-Tab entry.
func (*Desktop) SetAccessory() {
	C.floatclip_accessory()
}

// cocoaWindow resolves its NSWindow by identifier on every call.
type cocoaWindow struct {
	name string
}

func (w *cocoaWindow) with(fn func(*C.char)) {
	cs := C.CString(w.name)
	defer C.free(unsafe.Pointer(cs))
	fn(cs)
}

func (w *cocoaWindow) SetLevel(level int) {
	w.with(func(cs *C.char) { C.floatclip_set_level(cs, C.long(level)) })
}

func (w *cocoaWindow) SetStyleMask(mask uint) {
	w.with(func(cs *C.char) { C.floatclip_set_style_mask(cs, C.ulong(mask)) })
}

func (w *cocoaWindow) SetCollectionBehavior(behavior uint) {
	w.with(func(cs *C.char) { C.floatclip_set_collection(cs, C.ulong(behavior)) })
}

func (w *cocoaWindow) Show() {
	w.with(func(cs *C.char) { C.floatclip_show(cs) })
}

func (w *cocoaWindow) OrderOut() {
	w.with(func(cs *C.char) { C.floatclip_order_out(cs) })
}
