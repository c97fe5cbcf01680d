// Package retrieval grounds a French-speaking tax advisory assistant in
// statutory and doctrinal texts. It loads per-jurisdiction corpora (the
// CGI, BOFiP doctrine, and the Andorran, Swiss and Luxembourg codes),
// embeds user questions and returns the most relevant official extracts,
// ready to be rendered into a model prompt.
package retrieval
