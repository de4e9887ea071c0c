package params

type ScalarParser = scalarParser
