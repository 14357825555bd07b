package info

// Reference content shown by the storefront's informational views. The
// copy is maintained by the product team and served as-is.

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "¿Las ventanas se entregan montadas?",
			Answer:   "Sí, nuestras ventanas se entregan completamente ensambladas, con el cristal instalado y los herrajes montados, listas para su instalación en obra. Esto simplifica enormemente el proceso de montaje final.",
		},
		{
			Question: "¿Qué necesito para descargar las ventanas en la obra?",
			Answer:   "La entrega se realiza a pie de camión. Para pedidos pequeños o ventanas de tamaño manejable, dos personas suelen ser suficientes. Para ventanas de gran formato, pedidos voluminosos o si la obra está en un piso elevado, es responsabilidad del cliente disponer de los medios mecánicos necesarios (elevador, grúa, etc.) y del personal adecuado para la descarga y manipulación segura del material.",
		},
		{
			Question: "¿Qué incluye el pedido exactamente?",
			Answer:   "Cada ventana incluye el marco, la hoja(s) con el acristalamiento seleccionado y todos los herrajes de apertura y cierre ya instalados. El pedido no incluye la tornillería de fijación al muro, las espumas expansivas, ni los selladores perimetrales, ya que estos elementos deben ser seleccionados por el instalador en función del tipo de pared y las características de la obra.",
		},
		{
			Question: "¿Cuál es el plazo de entrega estimado?",
			Answer:   "Una vez que recibimos la confirmación del pago (mediante el envío del comprobante), el pedido entra en producción. El plazo de fabricación estimado es de 15 días laborables. A esto hay que sumarle el tiempo de transporte, que varía según la dirección de entrega final.",
		},
		{
			Question: "¿Puedo cancelar o modificar mi pedido?",
			Answer:   "Dado que cada ventana se fabrica a medida según las especificaciones únicas de cada cliente, no es posible realizar modificaciones ni cancelaciones una vez que el pedido ha entrado en la línea de producción (tras la confirmación del pago). Le recomendamos encarecidamente que revise todos los detalles en la factura proforma antes de proceder con el pago.",
		},
	}
}

type TechnicalSection struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

func TechnicalSummary() []TechnicalSection {
	return []TechnicalSection{
		{
			Title: "Sistemas de Ventanas PVC (VEKA AG)",
			Points: []string{
				"Modelos principales: VEKA 70mm AD (Softline, Topline, Schwingline) y Softline 70/82 AD+MD.",
				"Material del marco: PVC-U conforme a RAL-GZ 716.",
				"Permeabilidad al aire: Clase 4 (alta estanqueidad).",
				"Resistencia al viento: hasta C5/B5.",
				"Estanqueidad al agua: hasta 9A (protección contra lluvia intensa).",
				"Aislamiento acústico: hasta Rw (C;Ctr) 44 (-2;-6) dB.",
				"Resistencia al robo: hasta WK 2 (RC 2).",
				"Certificaciones: RAL System Passport No. 14-000396-PR05 y Certificado ift No. 189-9016021-1-1 válido hasta 22.09.2027.",
			},
		},
		{
			Title: "Sistemas de Persianas Enrollables Adaptativas (Aluprof)",
			Points: []string{
				"Para edificios existentes, sin alterar la estructura.",
				"Perfiles: aluminio con espuma de poliuretano, extrudidos (PE) y PVC (PT).",
				"Accionamientos manuales y eléctricos (motores, mandos a distancia, control inteligente).",
				"Aislamiento acústico y térmico superior: reduce costos de calefacción hasta un 30%.",
				"Sistema antimosquitos (Moskito) opcional.",
			},
		},
		{
			Title: "Sistemas de Persianas Enrollables Superpuestas (Aluprof)",
			Points: []string{
				"Se integran en la ventana durante la fabricación.",
				"Aislamiento térmico: coeficiente Usb de 0,59-0,66 W/(m²K) (probado por IFT Rosenheim).",
				"Refuerzos de acero para persianas anchas.",
				"Ideal para proyectos complejos por su alta rigidez.",
			},
		},
	}
}
