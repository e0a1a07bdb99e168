package main

import "github.com/college/skillbridge/internal/app"

func main() {
	app.Run()
}
