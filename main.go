package main

import "github.com/ranjidha/myHealth/cmd/myhealth"

func main() {
	myhealth.Execute()
}
