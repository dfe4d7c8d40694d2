package multilog_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/KerryL/logging/multilog"
)

func Example() {
	m := multilog.New(multilog.Config{})

	var replica bytes.Buffer
	m.Register(multilog.NewConsoleSink(os.Stdout), multilog.Borrowed)
	m.Register(multilog.NewWriterSink(&replica), multilog.Borrowed)

	// Writes accumulate per caller; the flush delivers them to every
	// sink as one message.
	m.Write(1, []byte("service "))
	m.Write(1, []byte("ready\n"))
	if err := m.Flush(1); err != nil {
		fmt.Println("flush failed:", err)
	}

	fmt.Print(replica.String())
	// Output:
	// service ready
	// service ready
}
