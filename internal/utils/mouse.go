package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	xConn *xgb.Conn
	xRoot xproto.Window
)

func initX11() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}

	xConn = conn
	xRoot = xproto.Setup(conn).DefaultScreen(conn).Root
	return nil
}

// GlobalMousePosition queries the X11 root pointer, so the cursor keeps
// tracking even while the preview window has no input focus. The connection
// is opened lazily on first use and kept for the process lifetime.
func GlobalMousePosition() (int, int, error) {
	if xConn == nil {
		if err := initX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(xConn, xRoot).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(reply.RootX), int(reply.RootY), nil
}
