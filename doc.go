/*
Package painter draws raster images onto a shared IPv6 pixel canvas by
encoding each pixel's canvas coordinate and color into a destination
address and emitting one ICMP echo request per pixel.

The package provides a command line interface, supporting various flags
for controlling the canvas origin, the traversal order and the pacing
between pixels. To check the supported commands type:

	$ ipv6-canvas-painter --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"context"
		"fmt"
		"time"

		painter "github.com/manpaco/ipv6-canvas-painter"
	)

	func main() {
		canvas, _ := painter.NewCanvas(painter.DefaultBaseAddr)
		img, err := painter.LoadImage("gopher.png")
		if err != nil {
			fmt.Printf("Error loading image: %s", err.Error())
			return
		}

		job := painter.PaintJob{
			Image:    img,
			Canvas:   canvas,
			Protocol: painter.ProtocolV1{},
			Delay:    time.Second,
		}
		sched := painter.NewScheduler(job, painter.NewPingTransmitter())
		summary, _ := sched.Run(context.Background())
		fmt.Println(summary.String())
	}
*/
package painter
