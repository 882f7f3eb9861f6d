package main

import "github.com/xiebaiyuan/buildsweep/cmd/buildsweep"

func main() { buildsweep.Execute() }
